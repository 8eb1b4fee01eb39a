package catalog

import "errors"

var (
	ErrDuplicateID = errors.New("property id already in catalog")
	ErrNotFound    = errors.New("property not found")
)

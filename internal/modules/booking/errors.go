package booking

import "errors"

var (
	ErrDuplicateID  = errors.New("booking id already in ledger")
	ErrNotFound     = errors.New("booking not found")
	ErrNotAvailable = errors.New("property not available")
)

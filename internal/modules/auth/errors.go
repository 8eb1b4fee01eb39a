package auth

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

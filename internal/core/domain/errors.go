package domain

import "errors"

var (
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidPrice       = errors.New("price must be a non-negative number")
	ErrInvalidID          = errors.New("invalid record id")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
)

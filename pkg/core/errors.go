package core

import "errors"

// Common errors.
var (
	ErrReadOnly    = errors.New("repository is in read-only mode")
	ErrInvalidKey  = errors.New("invalid note key")
	ErrInvalidHour = errors.New("hour must be between 0 and 23")
	ErrMalformed   = errors.New("malformed notes content")
)

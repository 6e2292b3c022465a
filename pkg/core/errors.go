package core

import "errors"

// Common errors.
var (
	ErrReadOnly         = errors.New("store is in read-only mode")
	ErrInvalidKey       = errors.New("invalid note key")
	ErrInvalidMonth     = errors.New("month must be in range 0-11")
	ErrInvalidMediaType = errors.New("invalid media type")
)

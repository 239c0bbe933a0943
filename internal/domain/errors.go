package domain

import "errors"

// Sentinel errors for library operations
var (
	// ErrInputClosed indicates the input stream ended before valid input was read
	ErrInputClosed = errors.New("input closed")
)

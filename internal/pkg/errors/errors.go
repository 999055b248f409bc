package errors

import "errors"

var (
	// ErrNotFound is the sentinel for a brief id with no storage slot.
	// Callers check it with errors.Is; it is an expected outcome, not a fault.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
)

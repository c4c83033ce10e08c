package rules

import "errors"

// Package-specific errors
var (
	// ErrUnknownRule is returned when a rule name does not resolve to a
	// registered factory.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrInvalidOptions is returned when a factory cannot make sense of the
	// options mapping declared in the schema.
	ErrInvalidOptions = errors.New("invalid rule options")
)

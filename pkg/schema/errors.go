package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Package-specific errors
var (
	// ErrInvalid is returned when validation fails. It is also the target
	// reported by Errors.Is, so errors.Is(err, ErrInvalid) detects any
	// validation failure regardless of the collected tokens.
	ErrInvalid = errors.New("validation failed")

	// ErrUnknownMode is returned when a mode name does not match strict,
	// cleanup or ignore.
	ErrUnknownMode = errors.New("unknown validation mode")
)

// Errors is the ordered list of error tokens collected during one validation
// session. Tokens are caller-supplied strings chosen by the schema author,
// not engine-defined codes.
type Errors []string

func (e Errors) Error() string {
	if len(e) == 0 {
		return ErrInvalid.Error()
	}
	return ErrInvalid.Error() + ": " + strings.Join(e, "; ")
}

// Is makes errors.Is(err, ErrInvalid) succeed for any collected error list.
func (e Errors) Is(target error) bool {
	return target == ErrInvalid
}

// DefinitionError reports a mistake in the schema itself: a missing default
// entry, an unresolvable named sub-schema or rule, a Mapping without
// properties, a Chain without steps, or a Callback without a function. It is
// fatal and distinct from a validation failure; supplying different data
// will not make it go away.
type DefinitionError struct {
	// Name is the schema or rule identifier involved, when known.
	Name   string
	Reason string
	Err    error
}

func (e *DefinitionError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("schema definition: %s: %s", e.Name, e.Reason)
	}
	return "schema definition: " + e.Reason
}

func (e *DefinitionError) Unwrap() error { return e.Err }

// IsDefinitionError reports whether err stems from a schema-definition
// mistake rather than invalid data.
func IsDefinitionError(err error) bool {
	var defErr *DefinitionError
	return errors.As(err, &defErr)
}

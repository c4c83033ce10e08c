package schema

import "fmt"

// Mode is the policy for mapping keys present in the input but not declared
// in the schema.
type Mode int

const (
	// ModeIgnore leaves undeclared keys in the output, unvalidated.
	ModeIgnore Mode = iota

	// ModeStrict fails the mapping when the input carries more keys than
	// the schema declares.
	ModeStrict

	// ModeCleanup drops undeclared keys from the sanitized output.
	ModeCleanup
)

func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModeCleanup:
		return "cleanup"
	default:
		return "ignore"
	}
}

// ParseMode converts a mode name to a Mode value.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "ignore", "":
		return ModeIgnore, nil
	case "strict":
		return ModeStrict, nil
	case "cleanup":
		return ModeCleanup, nil
	default:
		return ModeIgnore, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// Option configures a Validator.
type Option func(*Validator)

// WithMode sets the policy for undeclared mapping keys.
func WithMode(mode Mode) Option {
	return func(v *Validator) {
		v.mode = mode
	}
}

// WithFailEarly stops the walk at the first failing sub-value instead of
// collecting every failure.
func WithFailEarly() Option {
	return func(v *Validator) {
		v.failEarly = true
	}
}

// WithMaxDepth bounds how deep sequences may nest. Zero means unbounded.
// Exceeding the bound fails the subtree silently, without an error token.
func WithMaxDepth(depth int) Option {
	return func(v *Validator) {
		v.maxDepth = depth
	}
}

// WithRules sets the resolver used to construct scalar rule capabilities
// from schema-declared names. Without one, every named scalar is a
// schema-definition error.
func WithRules(resolver RuleResolver) Option {
	return func(v *Validator) {
		v.rules = resolver
	}
}

// WithCharset enables encoding validation of pre-filtered scalar values
// through the given checker. A failing check reports the fixed
// "Invalid encoding" error.
func WithCharset(checker CharsetChecker) Option {
	return func(v *Validator) {
		v.charset = checker
	}
}

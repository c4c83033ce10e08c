package schema

import "maps"

// DefaultSchema is the registry entry the driver starts from.
const DefaultSchema = "default"

// Validator walks (value, schema-node) pairs and produces either a sanitized
// copy of the value or the list of error tokens explaining why it failed.
//
// A Validator carries per-session state (collected errors, sanitized data,
// the reference table), so a single instance must not run concurrent
// Validate calls. The schema registry itself is immutable after New and safe
// to share; use Clone to get an independent instance over the same registry
// for each in-flight validation.
type Validator struct {
	registry map[string]Node
	rules    RuleResolver
	charset  CharsetChecker

	mode      Mode
	failEarly bool
	maxDepth  int

	errs  Errors
	data  any
	valid bool
	refs  Refs
}

// New builds a Validator over the given schema registry. The registry is
// copied; the "default" entry is required but checked lazily, at the first
// Validate call.
func New(registry map[string]Node, opts ...Option) *Validator {
	v := &Validator{
		registry: maps.Clone(registry),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Clone returns a fresh Validator sharing this one's registry, rule resolver
// and settings, with empty session state. Use it to run validations
// concurrently.
func (v *Validator) Clone() *Validator {
	return &Validator{
		registry:  v.registry,
		rules:     v.rules,
		charset:   v.charset,
		mode:      v.mode,
		failEarly: v.failEarly,
		maxDepth:  v.maxDepth,
	}
}

// Validate checks value against the registry's default schema and returns
// the sanitized copy. Session state from any previous call is reset first.
//
// On a validation failure the returned error is the collected Errors list
// (errors.Is(err, ErrInvalid) is true). On a schema-definition mistake the
// returned error is a *DefinitionError, which aborts the walk and is never
// recorded as a validation failure.
func (v *Validator) Validate(value any) (any, error) {
	v.errs = nil
	v.data = nil
	v.valid = false
	v.refs = make(Refs)

	root, ok := v.registry[DefaultSchema]
	if !ok {
		return nil, &DefinitionError{Name: DefaultSchema, Reason: "schema registry has no default entry"}
	}

	out, ok, err := v.validateNode(value, root, 0, v.maxDepth)
	if err != nil {
		return nil, err
	}

	v.data = out
	v.valid = ok
	if !ok {
		return nil, v.errs
	}
	return out, nil
}

// Errors returns the error tokens collected by the last Validate call, in
// the order they were recorded.
func (v *Validator) Errors() Errors { return v.errs }

// Data returns the sanitized value built by the last Validate call,
// regardless of whether validation passed.
func (v *Validator) Data() any { return v.data }

// IsValid reports whether the last Validate call passed.
func (v *Validator) IsValid() bool { return v.valid }

// fail records a validation failure. Empty tokens mark silent failures and
// are not appended to the error list.
func (v *Validator) fail(token string) {
	if token != "" {
		v.errs = append(v.errs, token)
	}
}

package rules

import "github.com/sievekit/sieve/pkg/schema"

// Rule is the scalar capability contract the schema engine consumes: a pure
// pre-filter transform plus a boolean check. It is an alias of the engine's
// interface, so anything the registry resolves plugs straight into a
// validator.
type Rule = schema.Rule

// RuleFunc adapts plain functions to the Rule interface. A nil Filter passes
// the value through; a nil Check accepts everything.
type RuleFunc struct {
	Filter func(any) any
	Check  func(any) bool
}

func (r RuleFunc) PreFilter(value any) any {
	if r.Filter == nil {
		return value
	}
	return r.Filter(value)
}

func (r RuleFunc) Validate(value any) bool {
	if r.Check == nil {
		return true
	}
	return r.Check(value)
}

// stringFilter lifts a string transform into a value pre-filter. Non-string
// values pass through untouched.
func stringFilter(transform func(string) string) func(any) any {
	return func(value any) any {
		if s, ok := value.(string); ok {
			return transform(s)
		}
		return value
	}
}

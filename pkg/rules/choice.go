package rules

import "fmt"

// ChoiceOptions configures the choice rule.
type ChoiceOptions struct {
	Allowed []any `mapstructure:"allowed"`
}

// NewChoice builds a membership rule: the value must equal one of the
// allowed entries. Comparison is by formatted value, so 1 and "1" in a
// schema loaded from YAML match the same input.
func NewChoice(opts map[string]any) (Rule, error) {
	var o ChoiceOptions
	if err := decodeOptions(opts, &o); err != nil {
		return nil, err
	}
	if len(o.Allowed) == 0 {
		return nil, fmt.Errorf("%w: choice rule needs allowed values", ErrInvalidOptions)
	}

	allowed := make(map[string]struct{}, len(o.Allowed))
	for _, a := range o.Allowed {
		allowed[fmt.Sprint(a)] = struct{}{}
	}

	return RuleFunc{
		Check: func(value any) bool {
			_, ok := allowed[fmt.Sprint(value)]
			return ok
		},
	}, nil
}

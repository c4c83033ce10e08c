package rules

import (
	"unicode/utf8"

	"github.com/sievekit/sieve/pkg/sanitizer"
)

// StringOptions configures the string rule.
type StringOptions struct {
	// MinLen and MaxLen bound the rune count. Zero means unconstrained.
	MinLen int `mapstructure:"min_len"`
	MaxLen int `mapstructure:"max_len"`

	// NoTrim keeps surrounding whitespace instead of trimming it in the
	// pre-filter.
	NoTrim bool `mapstructure:"no_trim"`
}

// NewString builds a length-bounded string rule. The pre-filter trims
// whitespace unless no_trim is set.
func NewString(opts map[string]any) (Rule, error) {
	var o StringOptions
	if err := decodeOptions(opts, &o); err != nil {
		return nil, err
	}

	filter := stringFilter(sanitizer.Trim)
	if o.NoTrim {
		filter = nil
	}

	return RuleFunc{
		Filter: filter,
		Check: func(value any) bool {
			s, ok := value.(string)
			if !ok {
				return false
			}
			n := utf8.RuneCountInString(s)
			if n < o.MinLen {
				return false
			}
			if o.MaxLen > 0 && n > o.MaxLen {
				return false
			}
			return true
		},
	}, nil
}

// NewNonEmpty builds a string rule requiring at least one rune after
// trimming.
func NewNonEmpty(opts map[string]any) (Rule, error) {
	merged := make(map[string]any, len(opts)+1)
	for k, v := range opts {
		merged[k] = v
	}
	if _, ok := merged["min_len"]; !ok {
		merged["min_len"] = 1
	}
	return NewString(merged)
}

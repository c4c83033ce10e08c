package rules

import (
	"fmt"
	"regexp"

	"github.com/sievekit/sieve/pkg/sanitizer"
)

// PatternOptions configures the pattern rule.
type PatternOptions struct {
	Pattern string `mapstructure:"pattern"`

	NoTrim bool `mapstructure:"no_trim"`
}

// NewPattern builds a regular-expression rule. The pattern compiles at
// resolution time, so a bad one is reported against the schema, not the
// data.
func NewPattern(opts map[string]any) (Rule, error) {
	var o PatternOptions
	if err := decodeOptions(opts, &o); err != nil {
		return nil, err
	}
	if o.Pattern == "" {
		return nil, fmt.Errorf("%w: pattern rule needs a pattern", ErrInvalidOptions)
	}
	re, err := regexp.Compile(o.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	filter := stringFilter(sanitizer.Trim)
	if o.NoTrim {
		filter = nil
	}

	return RuleFunc{
		Filter: filter,
		Check: func(value any) bool {
			s, ok := value.(string)
			return ok && re.MatchString(s)
		},
	}, nil
}

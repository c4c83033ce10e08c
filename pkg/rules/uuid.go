package rules

import (
	"github.com/google/uuid"

	"github.com/sievekit/sieve/pkg/sanitizer"
)

// NewUUID builds a rule accepting canonical 36-character UUID strings.
func NewUUID(opts map[string]any) (Rule, error) {
	return RuleFunc{
		Filter: stringFilter(sanitizer.TrimToLower),
		Check: func(value any) bool {
			s, ok := value.(string)
			if !ok {
				return false
			}

			// Cheap rejection before parsing: canonical form only.
			if len(s) != 36 {
				return false
			}
			if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
				return false
			}

			_, err := uuid.Parse(s)
			return err == nil
		},
	}, nil
}

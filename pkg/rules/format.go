package rules

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/sievekit/sieve/pkg/sanitizer"
)

// NewEmail builds an email address rule. The pre-filter normalises the
// address (trim, lowercase, dot consolidation); validation parses it with
// RFC 5322 rules plus the practical checks web forms expect.
func NewEmail(opts map[string]any) (Rule, error) {
	return RuleFunc{
		Filter: stringFilter(sanitizer.NormalizeEmail),
		Check: func(value any) bool {
			s, ok := value.(string)
			if !ok || s == "" {
				return false
			}

			addr, err := mail.ParseAddress(s)
			if err != nil {
				return false
			}

			local, domain, found := strings.Cut(addr.Address, "@")
			if !found || local == "" {
				return false
			}

			// The parser accepts bare hostnames; web use wants a dotted
			// domain with no empty labels.
			if !strings.Contains(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}
			return true
		},
	}, nil
}

// URLOptions configures the url rule.
type URLOptions struct {
	// Schemes restricts accepted URL schemes. Empty accepts http and https.
	Schemes []string `mapstructure:"schemes"`
}

// NewURL builds an absolute-URL rule.
func NewURL(opts map[string]any) (Rule, error) {
	var o URLOptions
	if err := decodeOptions(opts, &o); err != nil {
		return nil, err
	}
	if len(o.Schemes) == 0 {
		o.Schemes = []string{"http", "https"}
	}

	return RuleFunc{
		Filter: stringFilter(sanitizer.Trim),
		Check: func(value any) bool {
			s, ok := value.(string)
			if !ok || s == "" {
				return false
			}
			u, err := url.Parse(s)
			if err != nil || u.Host == "" {
				return false
			}
			for _, scheme := range o.Schemes {
				if strings.EqualFold(u.Scheme, scheme) {
					return true
				}
			}
			return false
		},
	}, nil
}

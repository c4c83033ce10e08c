// Package rules provides the catalog of scalar rule capabilities consumed
// by the schema validation engine.
//
// A capability couples a pre-filter transform (trimming, normalising) with a
// boolean check behind the Rule interface. Capabilities are selected by name
// through a Registry of factories; each factory receives the options mapping
// declared in the schema, decoded into a typed options struct.
//
// # Built-in rules
//
// Default returns a registry preloaded with the built-in catalog, one family
// per file:
//
//   - string, nonempty         – length-bounded strings, trimmed by default
//   - email                    – RFC 5322 address with practical extra checks
//   - url                      – absolute URL with scheme and host
//   - number, int              – numeric range, optionally integer-only
//   - pattern                  – match against a compiled regular expression
//   - uuid                     – canonical UUID string
//   - choice                   – membership in a declared value set
//   - bool                     – boolean values
//
// # Usage
//
//	reg := rules.Default()
//	rule, err := reg.Resolve("string", map[string]any{"min_len": 1, "max_len": 64})
//	if err != nil {
//		// unknown rule name or bad options: a schema-definition problem
//	}
//	clean := rule.PreFilter("  Ann ") // "Ann"
//	ok := rule.Validate(clean)        // true
//
// Custom capabilities register under any non-reserved name:
//
//	reg.Register("slug", func(opts map[string]any) (rules.Rule, error) {
//		return rules.RuleFunc{Check: isSlug}, nil
//	})
//
// The package is stateless apart from registry contents and safe for
// concurrent Resolve calls once registration is done.
package rules

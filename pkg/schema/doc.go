// Package schema implements a recursive, schema-driven structural validator:
// given an arbitrarily nested value (scalars, slices, string-keyed maps) and
// a declarative schema describing the expected shape, it produces either a
// sanitized copy of the value or the collected list of error tokens
// explaining why it failed.
//
// The engine deliberately knows nothing about what makes a scalar valid.
// Leaf checks are opaque capabilities behind the Rule interface (see the
// companion rules package for a catalog). The engine's own job is the walk:
// it decides in what order rules run over nested structure, builds the
// sanitized output map as it goes, and keeps the per-session bookkeeping
// (reference table, error list, validity flag) consistent across the
// recursion.
//
// # Architecture
//
// A schema is a registry of named Nodes, one of which must be "default", the
// root the driver starts from. Nodes form a closed variant set:
//
//   - Scalar   – delegates a leaf value to a named or inline rule capability
//   - Sequence – validates every element of a slice against an item schema,
//     inline or referenced by registry name (self-reference works)
//   - Mapping  – validates declared keys of a map against per-key sub-schemas
//   - Chain    – threads the value through an ordered list of steps
//   - Callback – defers the decision to a caller-supplied predicate
//
// Every variant additionally supports key renaming, reference capture into
// the session table, a preprocess transform and completion hooks.
//
// Two failure classes stay strictly apart. Invalid data collects
// caller-supplied error tokens and surfaces as an Errors value
// (errors.Is(err, ErrInvalid)); a broken schema — dangling reference,
// unknown rule name, mapping without properties — aborts the walk with a
// *DefinitionError that no amount of different input data can fix.
//
// # Usage
//
//	registry := map[string]schema.Node{
//		"default": &schema.Mapping{
//			Properties: map[string]schema.Node{
//				"name": &schema.Scalar{
//					Common:   schema.Common{Required: "name required"},
//					RuleName: "string",
//					Options:  map[string]any{"min_len": 1},
//				},
//			},
//		},
//	}
//
//	v := schema.New(registry, schema.WithRules(rules.Default()))
//	out, err := v.Validate(map[string]any{"name": "Ann"})
//	if err != nil {
//		if schema.IsDefinitionError(err) {
//			// the schema itself is broken
//		}
//		// invalid data; v.Errors() lists the tokens
//	}
//
// Schemas can also be authored declaratively in YAML and loaded with
// ParseYAML; the "validator" key selects the variant (mapping, sequence,
// chain) or names a scalar rule.
//
// # Concurrency
//
// A Validator holds per-session state and must not run concurrent Validate
// calls; the registry it wraps is immutable and shared. Clone returns an
// independent instance over the same registry for each in-flight validation.
package schema

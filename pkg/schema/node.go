package schema

// Refs is the reference table shared across one validation session. Nodes
// tagged with a Ref name store their current value here during the walk;
// callbacks and preprocess functions evaluated later in the same session
// observe the most recently stored value, not a snapshot.
type Refs map[string]any

// Rule is the scalar capability contract consumed by the engine. The engine
// never decides what makes a scalar valid; it only orchestrates when a rule's
// PreFilter and Validate run over nested structure.
type Rule interface {
	// PreFilter transforms the value before validation (trimming,
	// normalizing). It must be a pure transform.
	PreFilter(value any) any

	// Validate reports whether the pre-filtered value conforms.
	Validate(value any) bool
}

// RuleResolver constructs a Rule from a schema-declared identifier and an
// options mapping. Resolution failure is a schema-definition error, never a
// validation failure.
type RuleResolver interface {
	Resolve(name string, opts map[string]any) (Rule, error)
}

// CharsetChecker validates the encoding of a value. It is consulted only
// when charset checking is enabled on the validator.
type CharsetChecker interface {
	Validate(value any) bool
}

// Node is one declarative rule describing the expected shape of a value or
// sub-value. The variant set is closed: Scalar, Sequence, Mapping, Chain and
// Callback are the only implementations, and the driver dispatches on them
// exhaustively.
type Node interface {
	common() *Common
}

// Common holds the attributes every node variant supports, regardless of its
// kind. Variants embed it.
type Common struct {
	// Required is the error token reported when the value is missing or has
	// the wrong shape. An empty token marks the node as optional.
	Required string

	// Invalid is the error token reported when the value fails the node's
	// own validation.
	Invalid string

	// KeyRename rewrites incoming mapping keys (old name to new name)
	// before any validation of the node runs.
	KeyRename map[string]string

	// Ref names a slot in the session reference table under which the
	// current value is captured, after key renaming and before
	// preprocessing.
	Ref string

	// Preprocess replaces the value before variant-specific checks run.
	Preprocess func(value any) any

	// OnSuccess and OnFailure fire once the node's own result is known.
	// Their return values are ignored.
	OnSuccess func()
	OnFailure func()
}

func (c *Common) common() *Common { return c }

// Scalar delegates validation of a leaf value to an external rule
// capability, selected either by name through the validator's RuleResolver
// or supplied inline.
type Scalar struct {
	Common

	// RuleName identifies the capability in the rule resolver. Ignored when
	// Rule is set.
	RuleName string

	// Options is passed to the capability's factory when resolving by name.
	Options map[string]any

	// Rule, when non-nil, is used directly without resolver lookup.
	Rule Rule
}

// Sequence validates an ordered list, checking every element against the
// item schema.
type Sequence struct {
	Common

	// Items is the inline schema each element is validated against.
	Items Node

	// ItemsRef names a registry entry to use as the item schema when Items
	// is nil. Lookup happens lazily at validation time, so sequences may
	// reference themselves or schemas registered under other names.
	ItemsRef string

	// MinItems and MaxItems bound the element count. Zero means
	// unconstrained on that side.
	MinItems int
	MaxItems int

	// MaxDepth extends the session depth budget relative to the current
	// level when descending into items. Zero inherits the caller's budget.
	MaxDepth int
}

// Mapping validates a keyed structure, matching each declared property name
// against its own sub-schema. Keys present in the input but not declared are
// handled according to the validator's mode.
type Mapping struct {
	Common

	Properties map[string]Node
}

// Chain applies each step to the value produced by the previous one. The
// first step receives the node's input value.
type Chain struct {
	Common

	Steps []Node
}

// Callback delegates the decision to an externally supplied predicate. The
// predicate receives the live reference table, not a copy, so it can read
// values captured earlier in the walk.
type Callback struct {
	Common

	Fn func(value any, refs Refs) bool
}

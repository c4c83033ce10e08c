package rules

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/sievekit/sieve/pkg/schema"
)

var _ schema.RuleResolver = (*Registry)(nil)

// Factory builds a Rule from the options mapping declared in a schema.
type Factory func(opts map[string]any) (Rule, error)

// Registry maps rule names to factories. Registration is not synchronized;
// register everything up front, then share the registry freely.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Default returns a registry preloaded with the built-in rule catalog.
func Default() *Registry {
	r := NewRegistry()
	r.Register("string", NewString)
	r.Register("nonempty", NewNonEmpty)
	r.Register("email", NewEmail)
	r.Register("url", NewURL)
	r.Register("number", NewNumber)
	r.Register("int", NewInt)
	r.Register("pattern", NewPattern)
	r.Register("uuid", NewUUID)
	r.Register("choice", NewChoice)
	r.Register("bool", NewBool)
	return r
}

// Register binds a factory to a name, replacing any previous binding.
func (r *Registry) Register(name string, factory Factory) {
	r.factories[name] = factory
}

// Resolve constructs the capability registered under name with the given
// options. An unregistered name or options the factory rejects both mean
// the schema referencing them is broken, not that the data is invalid.
func (r *Registry) Resolve(name string, opts map[string]any) (Rule, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return factory(opts)
}

// decodeOptions fills a typed options struct from the raw schema mapping.
func decodeOptions[T any](opts map[string]any, out *T) error {
	if len(opts) == 0 {
		return nil
	}
	if err := mapstructure.Decode(opts, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}

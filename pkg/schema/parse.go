package schema

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Reserved variant tags in the declarative wire format. Any other value of
// the "validator" key names a scalar rule capability.
const (
	tagMapping  = "mapping"
	tagSequence = "sequence"
	tagChain    = "chain"
)

// nodeSpec is the declarative shape of one schema node as authored in YAML
// or as a plain nested map.
type nodeSpec struct {
	Validator  string            `mapstructure:"validator"`
	Required   string            `mapstructure:"required"`
	Invalid    string            `mapstructure:"invalid"`
	KeyRename  map[string]string `mapstructure:"keyrename"`
	Ref        string            `mapstructure:"ref"`
	Options    map[string]any    `mapstructure:"options"`
	Properties map[string]any    `mapstructure:"properties"`
	Items      any               `mapstructure:"items"`
	MinItems   int               `mapstructure:"min_items"`
	MaxItems   int               `mapstructure:"max_items"`
	MaxDepth   int               `mapstructure:"max_depth"`
	Chain      []map[string]any  `mapstructure:"chain"`
}

// Parse converts a declarative registry (schema name to node description)
// into typed nodes. Structural mistakes in the node descriptions themselves
// are reported here; semantic mistakes such as a dangling items reference
// surface later, at validation time.
func Parse(raw map[string]map[string]any) (map[string]Node, error) {
	registry := make(map[string]Node, len(raw))
	for name, desc := range raw {
		node, err := parseNode(desc)
		if err != nil {
			return nil, fmt.Errorf("schema %q: %w", name, err)
		}
		registry[name] = node
	}
	return registry, nil
}

// ParseYAML unmarshals a YAML document holding a schema registry and parses
// it. The document's top-level keys are schema names; one of them must be
// "default" for the registry to be usable.
func ParseYAML(data []byte) (map[string]Node, error) {
	var raw map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal schema document: %w", err)
	}
	return Parse(raw)
}

func parseNode(desc map[string]any) (Node, error) {
	var spec nodeSpec
	if err := mapstructure.Decode(desc, &spec); err != nil {
		return nil, fmt.Errorf("decode node: %w", err)
	}
	if spec.Validator == "" {
		return nil, fmt.Errorf("node has no validator tag")
	}

	c := Common{
		Required:  spec.Required,
		Invalid:   spec.Invalid,
		KeyRename: spec.KeyRename,
		Ref:       spec.Ref,
	}

	switch strings.ToLower(spec.Validator) {
	case tagMapping:
		// A mapping declared without properties stays nil here so the
		// engine reports the broken definition when the node is reached.
		var props map[string]Node
		if spec.Properties != nil {
			props = make(map[string]Node, len(spec.Properties))
		}
		for name, sub := range spec.Properties {
			subDesc, ok := sub.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("property %q: not a node description", name)
			}
			node, err := parseNode(subDesc)
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", name, err)
			}
			props[name] = node
		}
		return &Mapping{Common: c, Properties: props}, nil

	case tagSequence:
		seq := &Sequence{
			Common:   c,
			MinItems: spec.MinItems,
			MaxItems: spec.MaxItems,
			MaxDepth: spec.MaxDepth,
		}
		switch items := spec.Items.(type) {
		case nil:
			// Left dangling on purpose: the driver reports the missing
			// item schema as a definition error when the node is reached.
		case string:
			seq.ItemsRef = items
		case map[string]any:
			node, err := parseNode(items)
			if err != nil {
				return nil, fmt.Errorf("items: %w", err)
			}
			seq.Items = node
		default:
			return nil, fmt.Errorf("items: expected a schema name or node description, got %T", items)
		}
		return seq, nil

	case tagChain:
		steps := make([]Node, 0, len(spec.Chain))
		for i, stepDesc := range spec.Chain {
			node, err := parseNode(stepDesc)
			if err != nil {
				return nil, fmt.Errorf("chain step %d: %w", i, err)
			}
			steps = append(steps, node)
		}
		return &Chain{Common: c, Steps: steps}, nil

	default:
		return &Scalar{Common: c, RuleName: spec.Validator, Options: spec.Options}, nil
	}
}

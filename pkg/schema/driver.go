package schema

import (
	"fmt"
	"maps"
	"slices"
)

// invalidEncoding is the fixed error reported when charset validation of a
// scalar value fails. It is engine-defined, unlike the caller-supplied
// required/invalid tokens.
const invalidEncoding = "Invalid encoding"

// validateNode is the recursive driver. It returns the transformed value,
// whether the subtree passed, and a non-nil error only for schema-definition
// mistakes, which abort the whole walk.
//
// The fixed step order is: depth guard, key rename, reference capture,
// preprocess, variant dispatch, completion hooks.
func (v *Validator) validateNode(value any, n Node, level, maxDepth int) (any, bool, error) {
	// Depth overflow is a structural cutoff, not a user-facing failure: the
	// subtree fails without an error token.
	if maxDepth != 0 && level > maxDepth {
		return value, false, nil
	}

	c := n.common()

	if len(c.KeyRename) > 0 {
		if m, ok := value.(map[string]any); ok {
			value = renameKeys(m, c.KeyRename)
		}
	}

	// Captured after renaming, before preprocessing. The table holds the
	// value itself, so later preprocess/callback reads in sibling branches
	// observe whatever was stored most recently under this name.
	if c.Ref != "" {
		v.refs[c.Ref] = value
	}

	if c.Preprocess != nil {
		value = c.Preprocess(value)
	}

	var (
		ok  bool
		err error
	)
	switch node := n.(type) {
	case *Sequence:
		value, ok, err = v.validateSequence(value, node, level, maxDepth)
	case *Mapping:
		value, ok, err = v.validateMapping(value, node, level, maxDepth)
	case *Chain:
		value, ok, err = v.validateChain(value, node, level, maxDepth)
	case *Callback:
		ok, err = v.validateCallback(value, node)
	case *Scalar:
		value, ok, err = v.validateScalar(value, node)
	default:
		return value, false, &DefinitionError{Reason: fmt.Sprintf("unsupported node variant %T", n)}
	}
	if err != nil {
		return value, false, err
	}

	if !ok {
		if c.OnFailure != nil {
			c.OnFailure()
		}
	} else if c.OnSuccess != nil {
		c.OnSuccess()
	}

	return value, ok, nil
}

func (v *Validator) validateSequence(value any, n *Sequence, level, maxDepth int) (any, bool, error) {
	items, isSeq := value.([]any)
	if !isSeq {
		v.fail(n.Required)
		return value, false, nil
	}

	if len(items) < n.MinItems || (n.MaxItems > 0 && len(items) > n.MaxItems) {
		v.fail(n.Invalid)
		return value, false, nil
	}

	item := n.Items
	if item == nil {
		named, found := v.registry[n.ItemsRef]
		if !found {
			return value, false, &DefinitionError{Name: n.ItemsRef, Reason: "sequence item schema not found in registry"}
		}
		item = named
	}

	// A node-level MaxDepth extends the budget relative to the current
	// level rather than replacing it with an absolute cap.
	if n.MaxDepth != 0 {
		maxDepth = level + n.MaxDepth
	}

	out := slices.Clone(items)
	ok := true
	for i := range out {
		elem, elemOK, err := v.validateNode(out[i], item, level+1, maxDepth)
		if err != nil {
			return out, false, err
		}
		out[i] = elem
		if !elemOK {
			ok = false
			if v.failEarly {
				break
			}
		}
	}
	return out, ok, nil
}

func (v *Validator) validateMapping(value any, n *Mapping, level, maxDepth int) (any, bool, error) {
	in, isMap := value.(map[string]any)
	if !isMap {
		v.fail(n.Required)
		return value, false, nil
	}

	if n.Properties == nil {
		return value, false, &DefinitionError{Reason: "mapping node has no properties"}
	}

	if v.mode == ModeStrict {
		for _, key := range slices.Sorted(maps.Keys(in)) {
			if _, declared := n.Properties[key]; !declared {
				v.fail(n.Invalid)
				return value, false, nil
			}
		}
	}

	ok := true

	// Declared keys absent from the input fail only when their sub-schema
	// carries a required token. Keys are visited in sorted order so the
	// collected tokens come out deterministically.
	for _, name := range slices.Sorted(maps.Keys(n.Properties)) {
		if _, present := in[name]; present {
			continue
		}
		token := n.Properties[name].common().Required
		if token == "" {
			continue
		}
		v.fail(token)
		ok = false
		if v.failEarly {
			return in, false, nil
		}
	}

	out := make(map[string]any, len(in))
	for _, key := range slices.Sorted(maps.Keys(in)) {
		sub, declared := n.Properties[key]
		if !declared {
			// Undeclared keys are never validated: cleanup drops them,
			// ignore passes them through untouched. Strict already bailed
			// out above.
			if v.mode != ModeCleanup {
				out[key] = in[key]
			}
			continue
		}
		elem, elemOK, err := v.validateNode(in[key], sub, level, maxDepth)
		if err != nil {
			return out, false, err
		}
		out[key] = elem
		if !elemOK {
			ok = false
			if v.failEarly {
				return out, false, nil
			}
		}
	}
	return out, ok, nil
}

func (v *Validator) validateChain(value any, n *Chain, level, maxDepth int) (any, bool, error) {
	if len(n.Steps) == 0 {
		return value, false, &DefinitionError{Reason: "chain node has no steps"}
	}

	// Each step consumes the previous step's output. Without fail-early the
	// chain keeps going after a failing step, feeding the next step
	// whatever value the failing one produced, and the last computed pair
	// wins.
	ok := true
	for _, step := range n.Steps {
		out, stepOK, err := v.validateNode(value, step, level, maxDepth)
		if err != nil {
			return value, false, err
		}
		value = out
		ok = stepOK
		if !stepOK && v.failEarly {
			break
		}
	}
	return value, ok, nil
}

func (v *Validator) validateCallback(value any, n *Callback) (bool, error) {
	if n.Fn == nil {
		return false, &DefinitionError{Reason: "callback node has no function"}
	}
	if !n.Fn(value, v.refs) {
		v.fail(n.Invalid)
		return false, nil
	}
	return true, nil
}

func (v *Validator) validateScalar(value any, n *Scalar) (any, bool, error) {
	rule := n.Rule
	if rule == nil {
		if n.RuleName == "" {
			return value, false, &DefinitionError{Reason: "scalar node has neither a rule nor a rule name"}
		}
		if v.rules == nil {
			return value, false, &DefinitionError{Name: n.RuleName, Reason: "no rule resolver configured"}
		}
		resolved, err := v.rules.Resolve(n.RuleName, n.Options)
		if err != nil {
			return value, false, &DefinitionError{Name: n.RuleName, Reason: "rule resolution failed", Err: err}
		}
		rule = resolved
	}

	value = rule.PreFilter(value)

	// An empty string after pre-filtering means the field is absent; the
	// scalar check itself never runs on it.
	if s, isStr := value.(string); isStr && s == "" && n.Required != "" {
		v.fail(n.Required)
		return value, false, nil
	}

	if v.charset != nil && !v.charset.Validate(value) {
		v.errs = append(v.errs, invalidEncoding)
		return value, false, nil
	}

	if !rule.Validate(value) {
		v.fail(n.Invalid)
		return value, false, nil
	}
	return value, true, nil
}

// renameKeys rebuilds a mapping with every key found in the rename table
// replaced by its target name. Other keys carry over as-is.
func renameKeys(in map[string]any, rename map[string]string) map[string]any {
	out := make(map[string]any, len(in))
	for key, val := range in {
		if target, renamed := rename[key]; renamed {
			key = target
		}
		out[key] = val
	}
	return out
}

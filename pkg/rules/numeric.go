package rules

import (
	"math"
	"strconv"
	"strings"
)

// NumberOptions configures the number and int rules.
type NumberOptions struct {
	Min *float64 `mapstructure:"min"`
	Max *float64 `mapstructure:"max"`
}

// NewNumber builds a numeric range rule. Integers, floats and numeric
// strings all count as numbers; everything else fails.
func NewNumber(opts map[string]any) (Rule, error) {
	var o NumberOptions
	if err := decodeOptions(opts, &o); err != nil {
		return nil, err
	}
	return RuleFunc{
		Check: func(value any) bool {
			f, ok := toFloat(value)
			if !ok {
				return false
			}
			return inRange(f, o)
		},
	}, nil
}

// NewInt builds a numeric range rule that additionally rejects fractional
// values.
func NewInt(opts map[string]any) (Rule, error) {
	var o NumberOptions
	if err := decodeOptions(opts, &o); err != nil {
		return nil, err
	}
	return RuleFunc{
		Check: func(value any) bool {
			f, ok := toFloat(value)
			if !ok || f != math.Trunc(f) {
				return false
			}
			return inRange(f, o)
		},
	}, nil
}

// NewBool accepts boolean values only.
func NewBool(opts map[string]any) (Rule, error) {
	return RuleFunc{
		Check: func(value any) bool {
			_, ok := value.(bool)
			return ok
		},
	}, nil
}

func inRange(f float64, o NumberOptions) bool {
	if o.Min != nil && f < *o.Min {
		return false
	}
	if o.Max != nil && f > *o.Max {
		return false
	}
	return true
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sievekit/sieve/pkg/rules"
)

func TestNumberRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		opts  map[string]any
		value any
		want  bool
	}{
		{name: "int accepted", value: 5, want: true},
		{name: "float accepted", value: 5.5, want: true},
		{name: "numeric string accepted", value: "5.5", want: true},
		{name: "non-numeric string rejected", value: "five", want: false},
		{name: "bool rejected", value: true, want: false},
		{name: "below min rejected", opts: map[string]any{"min": 10.0}, value: 9, want: false},
		{name: "at min accepted", opts: map[string]any{"min": 10.0}, value: 10, want: true},
		{name: "above max rejected", opts: map[string]any{"max": 10.0}, value: 11, want: false},
		{name: "inside range accepted", opts: map[string]any{"min": 1.0, "max": 10.0}, value: 5, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := rules.NewNumber(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rule.Validate(tt.value))
		})
	}
}

func TestIntRule(t *testing.T) {
	t.Parallel()

	rule, err := rules.NewInt(map[string]any{"min": 0.0, "max": 100.0})
	require.NoError(t, err)

	assert.True(t, rule.Validate(42))
	assert.True(t, rule.Validate(42.0), "whole floats count as integers")
	assert.True(t, rule.Validate("42"))
	assert.False(t, rule.Validate(42.5))
	assert.False(t, rule.Validate(-1))
	assert.False(t, rule.Validate(101))
}

func TestBoolRule(t *testing.T) {
	t.Parallel()

	rule, err := rules.NewBool(nil)
	require.NoError(t, err)

	assert.True(t, rule.Validate(true))
	assert.True(t, rule.Validate(false))
	assert.False(t, rule.Validate("true"))
	assert.False(t, rule.Validate(1))
}

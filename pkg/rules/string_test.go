package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sievekit/sieve/pkg/rules"
)

func TestStringRule(t *testing.T) {
	t.Parallel()

	t.Run("trims by default", func(t *testing.T) {
		rule, err := rules.NewString(nil)
		require.NoError(t, err)
		assert.Equal(t, "hello", rule.PreFilter("  hello  "))
	})

	t.Run("no_trim keeps whitespace", func(t *testing.T) {
		rule, err := rules.NewString(map[string]any{"no_trim": true})
		require.NoError(t, err)
		assert.Equal(t, "  hello  ", rule.PreFilter("  hello  "))
	})

	t.Run("non-string prefilter passes through", func(t *testing.T) {
		rule, err := rules.NewString(nil)
		require.NoError(t, err)
		assert.Equal(t, 42, rule.PreFilter(42))
	})

	tests := []struct {
		name  string
		opts  map[string]any
		value any
		want  bool
	}{
		{name: "plain string accepted", value: "hello", want: true},
		{name: "non-string rejected", value: 42, want: false},
		{name: "below min_len rejected", opts: map[string]any{"min_len": 3}, value: "ab", want: false},
		{name: "at min_len accepted", opts: map[string]any{"min_len": 3}, value: "abc", want: true},
		{name: "above max_len rejected", opts: map[string]any{"max_len": 3}, value: "abcd", want: false},
		{name: "runes counted not bytes", opts: map[string]any{"max_len": 3}, value: "äöü", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := rules.NewString(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rule.Validate(tt.value))
		})
	}

	t.Run("bad options rejected", func(t *testing.T) {
		_, err := rules.NewString(map[string]any{"min_len": "three"})
		assert.Error(t, err)
	})
}

func TestNonEmptyRule(t *testing.T) {
	t.Parallel()

	rule, err := rules.NewNonEmpty(nil)
	require.NoError(t, err)

	assert.True(t, rule.Validate("x"))
	assert.False(t, rule.Validate(""))
	assert.Equal(t, "", rule.PreFilter("   "), "whitespace-only trims to empty")
}

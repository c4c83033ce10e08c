package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sievekit/sieve/pkg/rules"
)

func TestEmailRule(t *testing.T) {
	t.Parallel()

	rule, err := rules.NewEmail(nil)
	require.NoError(t, err)

	t.Run("prefilter normalises", func(t *testing.T) {
		assert.Equal(t, "john.doe@example.com", rule.PreFilter("  John.Doe...@Example.COM "))
	})

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "plain address", value: "user@example.com", want: true},
		{name: "subdomain", value: "user@mail.example.com", want: true},
		{name: "plus tag", value: "user+tag@example.com", want: true},
		{name: "missing at sign", value: "example.com", want: false},
		{name: "missing domain dot", value: "user@localhost", want: false},
		{name: "leading domain dot", value: "user@.example.com", want: false},
		{name: "trailing domain dot", value: "user@example.com.", want: false},
		{name: "empty string", value: "", want: false},
		{name: "non-string", value: 42, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Validate(tt.value))
		})
	}
}

func TestURLRule(t *testing.T) {
	t.Parallel()

	t.Run("defaults to http and https", func(t *testing.T) {
		rule, err := rules.NewURL(nil)
		require.NoError(t, err)

		assert.True(t, rule.Validate("https://example.com/path?q=1"))
		assert.True(t, rule.Validate("http://example.com"))
		assert.False(t, rule.Validate("ftp://example.com"))
		assert.False(t, rule.Validate("example.com"))
		assert.False(t, rule.Validate("not a url"))
		assert.False(t, rule.Validate(42))
	})

	t.Run("custom schemes", func(t *testing.T) {
		rule, err := rules.NewURL(map[string]any{"schemes": []string{"ftp"}})
		require.NoError(t, err)

		assert.True(t, rule.Validate("ftp://files.example.com"))
		assert.False(t, rule.Validate("https://example.com"))
	})
}

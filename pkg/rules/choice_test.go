package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sievekit/sieve/pkg/rules"
)

func TestChoiceRule(t *testing.T) {
	t.Parallel()

	t.Run("string membership", func(t *testing.T) {
		rule, err := rules.NewChoice(map[string]any{
			"allowed": []any{"admin", "member", "guest"},
		})
		require.NoError(t, err)

		assert.True(t, rule.Validate("admin"))
		assert.False(t, rule.Validate("superuser"))
	})

	t.Run("numbers match across representations", func(t *testing.T) {
		rule, err := rules.NewChoice(map[string]any{
			"allowed": []any{1, 2, 3},
		})
		require.NoError(t, err)

		assert.True(t, rule.Validate(2))
		assert.True(t, rule.Validate("2"), "schemas loaded from text match numeric input")
		assert.False(t, rule.Validate(4))
	})
}

package schema_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sievekit/sieve/pkg/schema"
)

// stubRule is an inline scalar capability for tests.
type stubRule struct {
	filter func(any) any
	check  func(any) bool
}

func (r stubRule) PreFilter(value any) any {
	if r.filter == nil {
		return value
	}
	return r.filter(value)
}

func (r stubRule) Validate(value any) bool {
	if r.check == nil {
		return true
	}
	return r.check(value)
}

// acceptAll passes any value through unchanged.
var acceptAll = stubRule{}

// nonEmptyString accepts strings with at least one byte.
var nonEmptyString = stubRule{
	check: func(v any) bool {
		s, ok := v.(string)
		return ok && s != ""
	},
}

// stubResolver resolves every name to the same rule, or fails.
type stubResolver struct {
	rule schema.Rule
	err  error
}

func (r stubResolver) Resolve(name string, opts map[string]any) (schema.Rule, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.rule, nil
}

func TestValidate_MappingHappyPath(t *testing.T) {
	t.Parallel()

	registry := map[string]schema.Node{
		"default": &schema.Mapping{
			Properties: map[string]schema.Node{
				"name": &schema.Scalar{
					Common: schema.Common{Required: "name required"},
					Rule:   nonEmptyString,
				},
			},
		},
	}

	t.Run("conforming input passes and round-trips", func(t *testing.T) {
		v := schema.New(registry)
		out, err := v.Validate(map[string]any{"name": "Ann"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "Ann"}, out)
		assert.True(t, v.IsValid())
		assert.Empty(t, v.Errors())
		assert.Equal(t, out, v.Data())
	})

	t.Run("missing required field collects its token", func(t *testing.T) {
		v := schema.New(registry)
		out, err := v.Validate(map[string]any{})
		require.Error(t, err)
		assert.Nil(t, out)
		assert.True(t, errors.Is(err, schema.ErrInvalid))
		assert.False(t, schema.IsDefinitionError(err))
		assert.False(t, v.IsValid())
		assert.Equal(t, schema.Errors{"name required"}, v.Errors())
	})

	t.Run("non-mapping input fails with the required token", func(t *testing.T) {
		v := schema.New(map[string]schema.Node{
			"default": &schema.Mapping{
				Common:     schema.Common{Required: "payload must be an object"},
				Properties: map[string]schema.Node{},
			},
		})
		_, err := v.Validate("not a map")
		require.Error(t, err)
		assert.Equal(t, schema.Errors{"payload must be an object"}, v.Errors())
	})
}

func TestValidate_SessionReset(t *testing.T) {
	t.Parallel()

	registry := map[string]schema.Node{
		"default": &schema.Mapping{
			Properties: map[string]schema.Node{
				"name": &schema.Scalar{
					Common: schema.Common{Required: "name required"},
					Rule:   nonEmptyString,
				},
			},
		},
	}
	v := schema.New(registry)

	_, err := v.Validate(map[string]any{})
	require.Error(t, err)
	require.Len(t, v.Errors(), 1)

	out, err := v.Validate(map[string]any{"name": "Bea"})
	require.NoError(t, err)
	assert.True(t, v.IsValid())
	assert.Empty(t, v.Errors(), "errors must reset between calls")
	assert.Equal(t, map[string]any{"name": "Bea"}, out)
}

func TestValidate_MissingDefaultSchema(t *testing.T) {
	t.Parallel()

	v := schema.New(map[string]schema.Node{
		"user": &schema.Mapping{Properties: map[string]schema.Node{}},
	})
	_, err := v.Validate(map[string]any{})
	require.Error(t, err)
	assert.True(t, schema.IsDefinitionError(err))
	assert.False(t, errors.Is(err, schema.ErrInvalid))
}

func TestValidate_RegistryImmutable(t *testing.T) {
	t.Parallel()

	registry := map[string]schema.Node{
		"default": &schema.Mapping{
			Properties: map[string]schema.Node{
				"name": &schema.Scalar{Rule: acceptAll},
			},
		},
	}
	v := schema.New(registry)

	// Mutating the caller's map after construction must not affect the
	// validator.
	delete(registry, "default")

	_, err := v.Validate(map[string]any{"name": "x"})
	assert.NoError(t, err)
}

func TestValidator_Clone(t *testing.T) {
	t.Parallel()

	registry := map[string]schema.Node{
		"default": &schema.Mapping{
			Properties: map[string]schema.Node{
				"name": &schema.Scalar{
					Common: schema.Common{Required: "name required"},
					Rule:   nonEmptyString,
				},
			},
		},
	}
	v := schema.New(registry, schema.WithMode(schema.ModeCleanup))

	clone := v.Clone()
	_, err := clone.Validate(map[string]any{})
	require.Error(t, err)

	// The original's session state stays untouched.
	assert.Empty(t, v.Errors())
	assert.False(t, v.IsValid())

	out, err := clone.Validate(map[string]any{"name": "Ann", "extra": 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Ann"}, out, "clone keeps the cleanup mode")
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    schema.Mode
		wantErr bool
	}{
		{name: "ignore", want: schema.ModeIgnore},
		{name: "strict", want: schema.ModeStrict},
		{name: "cleanup", want: schema.ModeCleanup},
		{name: "", want: schema.ModeIgnore},
		{name: "bogus", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("mode %q", tt.name), func(t *testing.T) {
			mode, err := schema.ParseMode(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, schema.ErrUnknownMode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
			assert.NotEmpty(t, mode.String())
		})
	}
}

package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgecrafted/domainkit/pkg/guard"
)

func upperFactory(args []guard.Arg) (guard.Guard, error) {
	return guard.New("{name} must{not}be uppercase", func(v any) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		for _, r := range s {
			if r >= 'a' && r <= 'z' {
				return false
			}
		}
		return true
	}), nil
}

func TestRegistryRegister(t *testing.T) {
	t.Parallel()

	reg := guard.NewRegistry()
	require.NoError(t, reg.Register("uppercase", upperFactory))
	assert.True(t, reg.Has("uppercase"))
	assert.False(t, reg.Has("lowercase"))
}

func TestRegistryRegister_Duplicate(t *testing.T) {
	t.Parallel()

	reg := guard.NewRegistry()
	require.NoError(t, reg.Register("uppercase", upperFactory))

	err := reg.Register("uppercase", upperFactory)
	require.Error(t, err)
	assert.ErrorIs(t, err, guard.ErrDuplicateRule)
	assert.True(t, guard.IsDuplicateRuleError(err))

	// The original registration stays in place.
	assert.True(t, reg.Has("uppercase"))
}

func TestRegistryRegister_InvalidInput(t *testing.T) {
	t.Parallel()

	reg := guard.NewRegistry()
	assert.Error(t, reg.Register("", upperFactory))
	assert.Error(t, reg.Register("x", nil))
}

func TestRegistryResolve_Unknown(t *testing.T) {
	t.Parallel()

	reg := guard.NewRegistry()
	_, err := reg.Resolve(guard.Token{Name: "bogus_rule"})
	require.Error(t, err)
	assert.ErrorIs(t, err, guard.ErrUnknownRule)
	assert.True(t, guard.IsUnknownRuleError(err))
}

func TestRegistryResolve_FactoryError(t *testing.T) {
	t.Parallel()

	// lt requires exactly one numeric argument.
	_, err := guard.Default().Resolve(guard.Token{Name: "lt"})
	require.Error(t, err)
	assert.ErrorIs(t, err, guard.ErrInvalidRuleArgs)
}

func TestDefaultRegistryHasBuiltins(t *testing.T) {
	t.Parallel()

	builtins := []string{
		"required", "empty", "length", "between", "in", "eq",
		"le", "lt", "ge", "gt", "odd", "even", "positive", "negative", "regex",
	}
	for _, name := range builtins {
		assert.True(t, guard.Default().Has(name), "builtin %q missing", name)
	}
}

func TestRegistryNames(t *testing.T) {
	t.Parallel()

	reg := guard.NewRegistry()
	require.NoError(t, reg.Register("b", upperFactory))
	require.NoError(t, reg.Register("a", upperFactory))
	assert.Equal(t, []string{"a", "b"}, reg.Names())
}

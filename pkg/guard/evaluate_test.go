package guard_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgecrafted/domainkit/pkg/guard"
)

func TestEvaluate_AllFieldsPass(t *testing.T) {
	t.Parallel()

	spec := guard.NewSpec().
		Field("email", "required").
		Field("age", "positive|lt[130]")

	res := guard.Evaluate(map[string]any{
		"email": "user@example.com",
		"age":   30,
	}, spec)

	assert.True(t, res.IsOk())
}

func TestEvaluate_AggregatesFailuresInDeclarationOrder(t *testing.T) {
	t.Parallel()

	spec := guard.NewSpec().
		Field("name", "required").
		Field("age", "lt[18]")

	res := guard.Evaluate(map[string]any{
		"name": "",
		"age":  20,
	}, spec)

	require.True(t, res.IsErr())

	var report guard.FailureReport
	require.ErrorAs(t, res.Err(), &report)
	require.Len(t, report, 2)
	assert.Equal(t, []string{"name", "age"}, report.Fields())
	assert.Equal(t, "name is required", report.Get("name"))
	assert.Equal(t, "age must be less than 18", report.Get("age"))
	assert.True(t, report.Has("name"))
	assert.False(t, report.Has("email"))
}

func TestEvaluate_FailFastWithinField(t *testing.T) {
	t.Parallel()

	reg := guard.NewRegistry()
	calls := 0
	require.NoError(t, reg.Register("probe", func(args []guard.Arg) (guard.Guard, error) {
		return guard.New("{name} probed", func(any) bool {
			calls++
			return true
		}), nil
	}))
	require.NoError(t, reg.Register("deny", func(args []guard.Arg) (guard.Guard, error) {
		return guard.New("{name} denied", func(any) bool { return false }), nil
	}))

	spec := guard.NewSpec().Field("x", "deny|probe")
	res := guard.EvaluateWith(reg, map[string]any{"x": 1}, spec)

	require.True(t, res.IsErr())
	assert.Equal(t, 0, calls, "rules after the first failure must not run")
}

func TestEvaluate_MissingFieldIsNil(t *testing.T) {
	t.Parallel()

	spec := guard.NewSpec().Field("email", "required")
	res := guard.Evaluate(map[string]any{}, spec)

	require.True(t, res.IsErr())

	var report guard.FailureReport
	require.ErrorAs(t, res.Err(), &report)
	assert.Equal(t, "email is required", report.Get("email"))
}

func TestEvaluate_NegatedRule(t *testing.T) {
	t.Parallel()

	spec := guard.NewSpec().Field("tags", "!empty")

	assert.True(t, guard.Evaluate(map[string]any{"tags": []string{"a"}}, spec).IsOk())

	res := guard.Evaluate(map[string]any{"tags": []string{}}, spec)
	require.True(t, res.IsErr())

	var report guard.FailureReport
	require.ErrorAs(t, res.Err(), &report)
	assert.Equal(t, "tags must not be empty", report.Get("tags"))
}

func TestCompile_UnknownRule(t *testing.T) {
	t.Parallel()

	spec := guard.NewSpec().Field("name", "bogus_rule")
	_, err := guard.Compile(spec, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, guard.ErrUnknownRule)

	var unknown *guard.UnknownRuleError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "bogus_rule", unknown.Name)
	assert.Contains(t, err.Error(), `field "name"`)
}

func TestCompile_MalformedRule(t *testing.T) {
	t.Parallel()

	spec := guard.NewSpec().Field("name", "lt[18")
	_, err := guard.Compile(spec, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, guard.ErrMalformedRule)
}

func TestCompile_BadArguments(t *testing.T) {
	t.Parallel()

	spec := guard.NewSpec().Field("age", `lt["eighteen"]`)
	_, err := guard.Compile(spec, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, guard.ErrInvalidRuleArgs)
}

func TestEvaluate_CompileErrorThroughResult(t *testing.T) {
	t.Parallel()

	spec := guard.NewSpec().Field("name", "bogus_rule")
	res := guard.Evaluate(map[string]any{"name": "x"}, spec)

	require.True(t, res.IsErr())
	assert.ErrorIs(t, res.Err(), guard.ErrUnknownRule)

	// A compile error is not a validation failure.
	var report guard.FailureReport
	assert.False(t, errors.As(res.Err(), &report))
}

func TestCompiledSpec_Reuse(t *testing.T) {
	t.Parallel()

	spec := guard.NewSpec().Field("n", "positive")
	compiled, err := guard.Compile(spec, nil)
	require.NoError(t, err)

	assert.True(t, compiled.Evaluate(map[string]any{"n": 1}).IsOk())
	assert.True(t, compiled.Evaluate(map[string]any{"n": -1}).IsErr())
	assert.True(t, compiled.Evaluate(map[string]any{"n": 2}).IsOk())
}

func TestFailureReport_Error(t *testing.T) {
	t.Parallel()

	report := guard.FailureReport{
		{Field: "name", Message: "is required"},
		{Field: "age", Message: "must be less than 18"},
	}
	assert.Equal(t, "validation failed: name: is required; age: must be less than 18", report.Error())
	assert.False(t, report.IsEmpty())
	assert.True(t, guard.FailureReport{}.IsEmpty())
}

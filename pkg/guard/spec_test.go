package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgecrafted/domainkit/pkg/guard"
)

func TestSpecBuilderPreservesOrder(t *testing.T) {
	t.Parallel()

	spec := guard.NewSpec().
		Field("name", "required").
		Field("age", "positive").
		Field("email", `regex[r"@"]`)

	require.Equal(t, 3, spec.Len())
	fields := spec.Fields()
	assert.Equal(t, guard.FieldRules{Field: "name", Rules: "required"}, fields[0])
	assert.Equal(t, guard.FieldRules{Field: "age", Rules: "positive"}, fields[1])
	assert.Equal(t, guard.FieldRules{Field: "email", Rules: `regex[r"@"]`}, fields[2])
}

func TestSpecFieldsReturnsCopy(t *testing.T) {
	t.Parallel()

	spec := guard.NewSpec().Field("a", "required")
	fields := spec.Fields()
	fields[0].Rules = "mutated"
	assert.Equal(t, "required", spec.Fields()[0].Rules)
}

func TestSpecFromYAML(t *testing.T) {
	t.Parallel()

	doc := []byte(`
name: required|between[2, 50]
age: required|positive|lt[130]
email: regex[r"^\S+@\S+$"]
`)
	spec, err := guard.SpecFromYAML(doc)
	require.NoError(t, err)
	require.Equal(t, 3, spec.Len())

	fields := spec.Fields()
	assert.Equal(t, "name", fields[0].Field)
	assert.Equal(t, "required|between[2, 50]", fields[0].Rules)
	assert.Equal(t, "age", fields[1].Field)
	assert.Equal(t, "email", fields[2].Field)
}

func TestSpecFromYAML_Empty(t *testing.T) {
	t.Parallel()

	spec, err := guard.SpecFromYAML(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, spec.Len())
}

func TestSpecFromYAML_NotAMapping(t *testing.T) {
	t.Parallel()

	_, err := guard.SpecFromYAML([]byte("- required\n- positive\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapping")
}

func TestSpecFromYAML_NestedValue(t *testing.T) {
	t.Parallel()

	_, err := guard.SpecFromYAML([]byte("name:\n  rules: required\n"))
	require.Error(t, err)
}

func TestSpecFromYAML_InvalidDocument(t *testing.T) {
	t.Parallel()

	_, err := guard.SpecFromYAML([]byte("name: [unclosed"))
	require.Error(t, err)
}

func TestSpecFromYAML_EvaluatesEndToEnd(t *testing.T) {
	t.Parallel()

	spec, err := guard.SpecFromYAML([]byte("name: required\nage: lt[18]\n"))
	require.NoError(t, err)

	res := guard.Evaluate(map[string]any{"name": "", "age": 20}, spec)
	require.True(t, res.IsErr())

	var report guard.FailureReport
	require.ErrorAs(t, res.Err(), &report)
	assert.Equal(t, []string{"name", "age"}, report.Fields())
}

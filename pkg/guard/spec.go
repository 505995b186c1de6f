package guard

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FieldRules pairs a field name with its rule-string.
type FieldRules struct {
	Field string
	Rules string
}

// Spec is an ordered mapping from field name to rule-string. Declaration
// order is significant: failures are reported in the order fields were
// added.
type Spec struct {
	fields []FieldRules
}

// NewSpec creates an empty validation spec.
func NewSpec() *Spec {
	return &Spec{}
}

// Field appends a field and its rule-string, returning the spec for
// chaining:
//
//	spec := guard.NewSpec().
//		Field("name", "required|between[2, 50]").
//		Field("age", "required|positive|lt[130]")
func (s *Spec) Field(name, rules string) *Spec {
	s.fields = append(s.fields, FieldRules{Field: name, Rules: rules})
	return s
}

// Fields returns the field/rule pairs in declaration order.
func (s *Spec) Fields() []FieldRules {
	out := make([]FieldRules, len(s.fields))
	copy(out, s.fields)
	return out
}

// Len returns the number of fields in the spec.
func (s *Spec) Len() int {
	return len(s.fields)
}

// SpecFromYAML decodes a YAML mapping of field name to rule-string into a
// Spec, preserving document order:
//
//	name: required|between[2, 50]
//	age:  required|lt[130]
//
// Decoding goes through yaml.Node rather than a map because Go maps would
// lose the field order the failure report depends on.
func SpecFromYAML(data []byte) (*Spec, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("guard: decoding spec: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return NewSpec(), nil
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("guard: spec document must be a mapping, got %s", nodeKind(mapping))
	}

	spec := NewSpec()
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("guard: spec entries must map a field name to a rule-string (line %d)", key.Line)
		}
		spec.Field(key.Value, value.Value)
	}
	return spec, nil
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	default:
		return "unknown"
	}
}

package guard

import (
	"fmt"
	"strings"

	"github.com/forgecrafted/domainkit/pkg/result"
)

// Checked is the unit value carried by a successful evaluation.
type Checked struct{}

// Failure is one field's validation failure.
type Failure struct {
	Field   string
	Message string
}

// FailureReport is the ordered collection of per-field failures produced by
// an evaluation. It implements error and flows through the Result error arm:
// a validation failure is an expected domain outcome, not a fault.
type FailureReport []Failure

func (fr FailureReport) Error() string {
	if len(fr) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(fr))
	for i, f := range fr {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether the given field failed.
func (fr FailureReport) Has(field string) bool {
	for _, f := range fr {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Get returns the failure message for a field, empty if the field passed.
func (fr FailureReport) Get(field string) string {
	for _, f := range fr {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// Fields returns the failed field names in declaration order.
func (fr FailureReport) Fields() []string {
	fields := make([]string, len(fr))
	for i, f := range fr {
		fields[i] = f.Field
	}
	return fields
}

func (fr FailureReport) IsEmpty() bool {
	return len(fr) == 0
}

// CompiledSpec is a validation spec with every rule-string parsed and every
// rule resolved against a registry. Compile once at startup; evaluation
// itself performs no parsing or registry lookups.
type CompiledSpec struct {
	fields []compiledField
}

type compiledField struct {
	field string
	chain []compiledRule
}

type compiledRule struct {
	guard  Guard
	negate bool
}

// Compile parses and resolves a spec against a registry (nil means the
// default registry). Malformed rule-strings, unknown rule names, and invalid
// rule arguments are programmer errors and surface here, before any value is
// evaluated.
func Compile(spec *Spec, reg *Registry) (*CompiledSpec, error) {
	if reg == nil {
		reg = Default()
	}

	compiled := &CompiledSpec{fields: make([]compiledField, 0, len(spec.fields))}
	for _, fr := range spec.fields {
		tokens, err := ParseRules(fr.Rules)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", fr.Field, err)
		}
		chain := make([]compiledRule, 0, len(tokens))
		for _, tok := range tokens {
			g, err := reg.Resolve(tok)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", fr.Field, err)
			}
			chain = append(chain, compiledRule{guard: g, negate: tok.Negate})
		}
		compiled.fields = append(compiled.fields, compiledField{field: fr.Field, chain: chain})
	}
	return compiled, nil
}

// Evaluate checks the values against the compiled spec. A field absent from
// values is evaluated as nil, so required-style rules can detect it.
//
// Each field's rule chain stops at its first unsatisfied rule, but every
// field is checked; the failures of all fields are aggregated into one
// FailureReport in field-declaration order. The report travels through the
// Result error arm.
func (cs *CompiledSpec) Evaluate(values map[string]any) result.Result[Checked] {
	var report FailureReport
	for _, cf := range cs.fields {
		value := values[cf.field]
		for _, cr := range cf.chain {
			satisfied := cr.guard.Satisfied(value)
			if cr.negate {
				satisfied = !satisfied
			}
			if !satisfied {
				report = append(report, Failure{
					Field:   cf.field,
					Message: renderMessage(cr.guard.Message(), cf.field, cr.negate),
				})
				break
			}
		}
	}
	if len(report) > 0 {
		return result.Err[Checked](report)
	}
	return result.Ok(Checked{})
}

// Evaluate compiles the spec against the default registry and evaluates the
// values in one call. Compile errors also arrive through the Result error
// arm; distinguish them from validation failures with errors.As on
// FailureReport, or compile once with Compile to surface them at startup.
func Evaluate(values map[string]any, spec *Spec) result.Result[Checked] {
	return EvaluateWith(nil, values, spec)
}

// EvaluateWith is Evaluate against an explicit registry.
func EvaluateWith(reg *Registry, values map[string]any, spec *Spec) result.Result[Checked] {
	compiled, err := Compile(spec, reg)
	if err != nil {
		return result.Err[Checked](err)
	}
	return compiled.Evaluate(values)
}

// Check validates a single named value against a rule-string using the
// default registry. The error return carries parse and registry failures;
// the Result carries the validation outcome.
func Check(field string, value any, rules string) (Result, error) {
	return Default().Check(field, value, rules)
}

// Check validates a single named value against a rule-string.
func (r *Registry) Check(field string, value any, rules string) (Result, error) {
	tokens, err := ParseRules(rules)
	if err != nil {
		return Result{}, err
	}
	for _, tok := range tokens {
		g, err := r.Resolve(tok)
		if err != nil {
			return Result{}, err
		}
		satisfied := g.Satisfied(value)
		if tok.Negate {
			satisfied = !satisfied
		}
		if !satisfied {
			return Fail(renderMessage(g.Message(), field, tok.Negate)), nil
		}
	}
	return OK(), nil
}

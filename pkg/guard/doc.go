// Package guard provides a declarative validation engine for in-memory
// construction arguments, driven by a compact rule-string DSL.
//
// A rule-string is an ordered chain of named guards for one field:
//
//	required|between[2, 50]
//	!empty|regex[r"^[a-zA-Z0-9 ]+$"]
//	positive|lt[130]
//
// Rules are separated by "|", optionally negated with a leading "!", and
// parameterized with a bracketed, comma-separated argument list. Arguments
// may be integers, decimals, booleans, none, quoted strings, r"..." regex
// literals, or nested lists.
//
// # Architecture
//
// The engine is split into small, separately usable pieces:
//
//   - ParseRules     – explicit parser from rule-string to []Token
//   - Registry       – rule name to guard factory; Default() carries the
//     builtin vocabulary, NewRegistry() starts empty for injection
//   - Guard          – predicate over one value plus a message template with
//     {name} and {not} placeholders
//   - Spec           – ordered field-to-rule-string mapping (order drives
//     failure ordering); SpecFromYAML loads one from configuration
//   - Compile        – resolves a Spec into a CompiledSpec once, surfacing
//     malformed rule-strings, unknown names, and bad arguments as
//     programmer errors before any value is seen
//   - Evaluate       – checks values against a spec, fail-fast per field and
//     exhaustive across fields, aggregating into a FailureReport
//
// Evaluation results travel through the result package: Ok(Checked{}) when
// every chain is satisfied, or Err(FailureReport) listing every failed field
// in declaration order. FailureReport implements error but represents an
// expected domain outcome, not a fault.
//
// # Usage
//
//	spec := guard.NewSpec().
//		Field("name", "required|between[2, 50]").
//		Field("age", "required|positive|lt[130]")
//
//	r := guard.Evaluate(map[string]any{
//		"name": "Ada",
//		"age":  36,
//	}, spec)
//
//	if r.IsErr() {
//		var report guard.FailureReport
//		errors.As(r.Err(), &report) // per-field messages
//	}
//
// # Builtin rules
//
//	required          value is present (not nil)
//	empty             length is zero
//	length[n]         length equals n
//	between[min,max]  length within [min, max]
//	regex[r"..."]     string matches the pattern
//	in[a, b, c]       value is one of the listed arguments
//	eq[x]             value equals x
//	le[x] lt[x]       numeric comparisons
//	ge[x] gt[x]
//	odd even          integer parity
//	positive negative numeric sign
//
// # Custom rules
//
// Register extends the vocabulary; names are unique and duplicates are
// rejected, never overwritten. Populate registries during initialization:
// registration is not meant to race with evaluation.
//
//	err := guard.Register("uppercase", func(args []guard.Arg) (guard.Guard, error) {
//		return guard.New("{name} must{not}be uppercase", func(v any) bool {
//			s, ok := v.(string)
//			return ok && s == strings.ToUpper(s)
//		}), nil
//	})
package guard

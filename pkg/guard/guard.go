package guard

import "strings"

// Guard is a single named, parameterized predicate over one value, paired
// with a failure message template. Templates may contain the {name} and
// {not} placeholders, substituted by the evaluator with the field name and
// the negation word.
type Guard interface {
	// Satisfied reports whether the value passes the predicate. Negation is
	// applied by the evaluator, not the guard.
	Satisfied(value any) bool

	// Message returns the failure message template.
	Message() string
}

// Factory instantiates a Guard from parsed rule arguments. It returns an
// error when the arguments have the wrong count or type; such errors surface
// at compile time, before any value is evaluated.
type Factory func(args []Arg) (Guard, error)

// New creates a Guard from a message template and a predicate. This is the
// building block for custom rule vocabulary:
//
//	guard.Register("uppercase", func(args []guard.Arg) (guard.Guard, error) {
//		return guard.New("{name} must{not}be uppercase", func(v any) bool {
//			s, ok := v.(string)
//			return ok && s == strings.ToUpper(s)
//		}), nil
//	})
func New(message string, satisfied func(value any) bool) Guard {
	return &guardFunc{message: message, satisfied: satisfied}
}

type guardFunc struct {
	message   string
	satisfied func(value any) bool
}

func (g *guardFunc) Satisfied(value any) bool {
	return g.satisfied(value)
}

func (g *guardFunc) Message() string {
	return g.message
}

// Result is the outcome of checking a value against a rule chain: satisfied,
// or failed with a rendered message.
type Result struct {
	satisfied bool
	message   string
}

// OK creates a satisfied Result.
func OK() Result {
	return Result{satisfied: true}
}

// Fail creates an unsatisfied Result with a rendered failure message.
func Fail(message string) Result {
	return Result{message: message}
}

func (r Result) Satisfied() bool {
	return r.satisfied
}

// Message returns the failure message, empty when satisfied.
func (r Result) Message() string {
	return r.message
}

func (r Result) String() string {
	if r.satisfied {
		return "ok()"
	}
	return "fail(" + r.message + ")"
}

// Combine folds results into one: the first failure wins, otherwise OK.
func Combine(results ...Result) Result {
	for _, r := range results {
		if !r.satisfied {
			return r
		}
	}
	return OK()
}

// renderMessage substitutes the {name} and {not} placeholders. The {not}
// placeholder absorbs its surrounding spaces: " not " when negated, a single
// space otherwise, so templates read naturally in both forms.
func renderMessage(template, field string, negate bool) string {
	not := " "
	if negate {
		not = " not "
	}
	msg := strings.ReplaceAll(template, "{not}", not)
	return strings.ReplaceAll(msg, "{name}", field)
}

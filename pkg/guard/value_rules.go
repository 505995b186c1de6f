package guard

import (
	"fmt"
	"strings"
)

// Builtin rules that inspect presence, emptiness, length, and membership.
// Message templates follow the {name}/{not} placeholder convention.

func requiredFactory(args []Arg) (Guard, error) {
	if err := wantArgs("required", args, 0); err != nil {
		return nil, err
	}
	return New("{name}{not}is required", func(v any) bool {
		if isNil(v) {
			return false
		}
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s) != ""
		}
		return true
	}), nil
}

func emptyFactory(args []Arg) (Guard, error) {
	if err := wantArgs("empty", args, 0); err != nil {
		return nil, err
	}
	return New("{name} must{not}be empty", func(v any) bool {
		if isNil(v) {
			return true
		}
		n, ok := valueLen(v)
		return ok && n == 0
	}), nil
}

func lengthFactory(args []Arg) (Guard, error) {
	if err := wantArgs("length", args, 1); err != nil {
		return nil, err
	}
	want, ok := args[0].Int()
	if !ok {
		return nil, fmt.Errorf("length expects an integer argument, got %s: %w", args[0], ErrInvalidRuleArgs)
	}
	msg := fmt.Sprintf("{name} must{not}have length %d", want)
	return New(msg, func(v any) bool {
		n, ok := valueLen(v)
		return ok && int64(n) == want
	}), nil
}

func betweenFactory(args []Arg) (Guard, error) {
	if err := wantArgs("between", args, 2); err != nil {
		return nil, err
	}
	min, okMin := args[0].Int()
	max, okMax := args[1].Int()
	if !okMin || !okMax {
		return nil, fmt.Errorf("between expects two integer arguments: %w", ErrInvalidRuleArgs)
	}
	msg := fmt.Sprintf("{name} must{not}be between %d and %d", min, max)
	return New(msg, func(v any) bool {
		n, ok := valueLen(v)
		return ok && int64(n) >= min && int64(n) <= max
	}), nil
}

func inFactory(args []Arg) (Guard, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("in expects at least 1 argument: %w", ErrInvalidRuleArgs)
	}
	// Both in[[a, b]] and the flat in[a, b] denote the same membership set.
	set := args
	if len(args) == 1 {
		if items, ok := args[0].List(); ok {
			set = items
		}
	}
	msg := fmt.Sprintf("{name} must{not}be in the list %s", ListArg(set...))
	return New(msg, func(v any) bool {
		for _, item := range set {
			if argEquals(item, v) {
				return true
			}
		}
		return false
	}), nil
}

func eqFactory(args []Arg) (Guard, error) {
	if err := wantArgs("eq", args, 1); err != nil {
		return nil, err
	}
	want := args[0]
	msg := fmt.Sprintf("{name} must{not}be equal to %s", want)
	return New(msg, func(v any) bool {
		return argEquals(want, v)
	}), nil
}

func wantArgs(rule string, args []Arg, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s expects %d argument(s), got %d: %w", rule, n, len(args), ErrInvalidRuleArgs)
	}
	return nil
}

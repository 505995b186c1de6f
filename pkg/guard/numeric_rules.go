package guard

import "fmt"

// Builtin rules over numeric values. Field values coerce across numeric
// kinds, so lt[18] agrees with an int8 or a float64 alike; non-numeric
// values never satisfy these rules.

func comparisonFactory(rule, phrasing string, cmp func(v, bound float64) bool) Factory {
	return func(args []Arg) (Guard, error) {
		if err := wantArgs(rule, args, 1); err != nil {
			return nil, err
		}
		bound, ok := args[0].Float()
		if !ok {
			return nil, fmt.Errorf("%s expects a numeric argument, got %s: %w", rule, args[0], ErrInvalidRuleArgs)
		}
		msg := fmt.Sprintf("{name} must{not}be %s %s", phrasing, args[0])
		return New(msg, func(v any) bool {
			f, ok := toFloat(v)
			return ok && cmp(f, bound)
		}), nil
	}
}

var (
	leFactory = comparisonFactory("le", "less than or equal to", func(v, b float64) bool { return v <= b })
	ltFactory = comparisonFactory("lt", "less than", func(v, b float64) bool { return v < b })
	geFactory = comparisonFactory("ge", "greater than or equal to", func(v, b float64) bool { return v >= b })
	gtFactory = comparisonFactory("gt", "greater than", func(v, b float64) bool { return v > b })
)

func parityFactory(rule string, even bool) Factory {
	return func(args []Arg) (Guard, error) {
		if err := wantArgs(rule, args, 0); err != nil {
			return nil, err
		}
		return New("{name} must{not}be "+rule, func(v any) bool {
			i, ok := toInt(v)
			return ok && (i%2 == 0) == even
		}), nil
	}
}

func signFactory(rule string, cmp func(v float64) bool) Factory {
	return func(args []Arg) (Guard, error) {
		if err := wantArgs(rule, args, 0); err != nil {
			return nil, err
		}
		return New("{name} must{not}be "+rule, func(v any) bool {
			f, ok := toFloat(v)
			return ok && cmp(f)
		}), nil
	}
}

var (
	oddFactory      = parityFactory("odd", false)
	evenFactory     = parityFactory("even", true)
	positiveFactory = signFactory("positive", func(v float64) bool { return v > 0 })
	negativeFactory = signFactory("negative", func(v float64) bool { return v < 0 })
)

package guard

import (
	"fmt"
	"regexp"
)

func regexFactory(args []Arg) (Guard, error) {
	if err := wantArgs("regex", args, 1); err != nil {
		return nil, err
	}
	pattern, ok := args[0].Str()
	if !ok {
		return nil, fmt.Errorf("regex expects a pattern argument, got %s: %w", args[0], ErrInvalidRuleArgs)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("regex pattern %q: %v: %w", pattern, err, ErrInvalidRuleArgs)
	}
	msg := fmt.Sprintf("{name} must{not}match the pattern %s", pattern)
	return New(msg, func(v any) bool {
		s, ok := v.(string)
		return ok && re.MatchString(s)
	}), nil
}

package guard

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRule indicates a rule-string that does not follow the DSL
	// grammar. Wrapped by *SyntaxError, which carries the position.
	ErrMalformedRule = errors.New("guard: malformed rule string")

	// ErrUnknownRule indicates a rule name that is not registered.
	ErrUnknownRule = errors.New("guard: unknown rule")

	// ErrDuplicateRule indicates an attempt to register a name twice.
	// Registrations never overwrite.
	ErrDuplicateRule = errors.New("guard: rule already registered")

	// ErrInvalidRuleArgs indicates a rule instantiated with arguments of the
	// wrong count or type.
	ErrInvalidRuleArgs = errors.New("guard: invalid rule arguments")
)

// SyntaxError reports where a rule-string failed to parse.
type SyntaxError struct {
	Statement string
	Pos       int
	Expected  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("guard: malformed rule string: expected %s at position %d in %q", e.Expected, e.Pos, e.Statement)
}

func (e *SyntaxError) Unwrap() error {
	return ErrMalformedRule
}

// UnknownRuleError reports a rule name absent from the registry.
type UnknownRuleError struct {
	Name string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("guard: unknown rule %q", e.Name)
}

func (e *UnknownRuleError) Unwrap() error {
	return ErrUnknownRule
}

// DuplicateRuleError reports a registration collision.
type DuplicateRuleError struct {
	Name string
}

func (e *DuplicateRuleError) Error() string {
	return fmt.Sprintf("guard: rule %q already registered", e.Name)
}

func (e *DuplicateRuleError) Unwrap() error {
	return ErrDuplicateRule
}

func IsSyntaxError(err error) bool {
	var e *SyntaxError
	return errors.As(err, &e)
}

func IsUnknownRuleError(err error) bool {
	var e *UnknownRuleError
	return errors.As(err, &e)
}

func IsDuplicateRuleError(err error) bool {
	var e *DuplicateRuleError
	return errors.As(err, &e)
}

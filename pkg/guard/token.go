package guard

import (
	"fmt"
	"strings"
)

// ArgKind discriminates the variants of a parsed rule argument.
type ArgKind uint8

const (
	KindString ArgKind = iota
	KindInt
	KindFloat
	KindBool
	KindNull
	KindList
)

// Arg is a tagged variant holding one parsed rule argument. Arguments are
// produced by the rule-string parser and consumed by guard factories.
type Arg struct {
	kind ArgKind
	str  string
	i    int64
	f    float64
	b    bool
	list []Arg
}

func StringArg(s string) Arg {
	return Arg{kind: KindString, str: s}
}

func IntArg(i int64) Arg {
	return Arg{kind: KindInt, i: i}
}

func FloatArg(f float64) Arg {
	return Arg{kind: KindFloat, f: f}
}

func BoolArg(b bool) Arg {
	return Arg{kind: KindBool, b: b}
}

func NullArg() Arg {
	return Arg{kind: KindNull}
}

func ListArg(items ...Arg) Arg {
	return Arg{kind: KindList, list: items}
}

func (a Arg) Kind() ArgKind {
	return a.kind
}

func (a Arg) IsNull() bool {
	return a.kind == KindNull
}

// Str returns the string value and whether the argument is a string.
func (a Arg) Str() (string, bool) {
	return a.str, a.kind == KindString
}

// Int returns the integer value and whether the argument is numeric with an
// integral value.
func (a Arg) Int() (int64, bool) {
	switch a.kind {
	case KindInt:
		return a.i, true
	case KindFloat:
		if a.f == float64(int64(a.f)) {
			return int64(a.f), true
		}
	}
	return 0, false
}

// Float returns the numeric value as a float64; integer arguments coerce.
func (a Arg) Float() (float64, bool) {
	switch a.kind {
	case KindInt:
		return float64(a.i), true
	case KindFloat:
		return a.f, true
	}
	return 0, false
}

func (a Arg) Bool() (bool, bool) {
	return a.b, a.kind == KindBool
}

func (a Arg) List() ([]Arg, bool) {
	return a.list, a.kind == KindList
}

// Value returns the argument as an untyped Go value.
func (a Arg) Value() any {
	switch a.kind {
	case KindString:
		return a.str
	case KindInt:
		return a.i
	case KindFloat:
		return a.f
	case KindBool:
		return a.b
	case KindList:
		items := make([]any, len(a.list))
		for i, item := range a.list {
			items[i] = item.Value()
		}
		return items
	default:
		return nil
	}
}

// String renders the argument roughly as it appeared in the rule-string.
func (a Arg) String() string {
	switch a.kind {
	case KindString:
		return a.str
	case KindInt:
		return fmt.Sprintf("%d", a.i)
	case KindFloat:
		return fmt.Sprintf("%g", a.f)
	case KindBool:
		return fmt.Sprintf("%t", a.b)
	case KindList:
		parts := make([]string, len(a.list))
		for i, item := range a.list {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "none"
	}
}

// Token is one parsed rule descriptor: an optionally negated rule name with
// its bracketed arguments.
type Token struct {
	Negate bool
	Name   string
	Args   []Arg
}

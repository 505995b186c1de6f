package maybe

import "errors"

// ErrNoValue is returned by Get when the Maybe holds no value.
var ErrNoValue = errors.New("maybe: no value present")

// Maybe represents an optional value: either Some (present) or None (absent).
// The zero value is None.
type Maybe[T any] struct {
	value T
	some  bool
}

// Some creates a Maybe containing a value.
func Some[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, some: true}
}

// None creates an empty Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr creates a Maybe from a pointer: nil becomes None, otherwise the
// pointed-to value is copied into Some.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// When creates Some(v) if present is true, otherwise None.
func When[T any](present bool, v T) Maybe[T] {
	if present {
		return Some(v)
	}
	return None[T]()
}

// IsSome reports whether a value is present.
func (m Maybe[T]) IsSome() bool {
	return m.some
}

// IsNone reports whether the Maybe is empty.
func (m Maybe[T]) IsNone() bool {
	return !m.some
}

// Get returns the contained value, or ErrNoValue when empty.
func (m Maybe[T]) Get() (T, error) {
	if !m.some {
		var zero T
		return zero, ErrNoValue
	}
	return m.value, nil
}

// MustGet returns the contained value. It panics when the Maybe is empty;
// use Get or OrElse when absence is an expected outcome.
func (m Maybe[T]) MustGet() T {
	if !m.some {
		panic(ErrNoValue)
	}
	return m.value
}

// OrElse returns the contained value or the provided default.
func (m Maybe[T]) OrElse(def T) T {
	if m.some {
		return m.value
	}
	return def
}

// OrElseGet returns the contained value, lazily computing the default only
// when the Maybe is empty.
func (m Maybe[T]) OrElseGet(f func() T) T {
	if m.some {
		return m.value
	}
	return f()
}

// Ptr returns a pointer to a copy of the contained value, or nil when empty.
func (m Maybe[T]) Ptr() *T {
	if !m.some {
		return nil
	}
	v := m.value
	return &v
}

// Map applies a same-type transformation to the contained value if present,
// otherwise returns None unchanged.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if !m.some {
		return m
	}
	return Some(f(m.value))
}

// Map applies a function to the contained value if present, producing a
// Maybe of the function's result type.
func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if m.IsNone() {
		return None[U]()
	}
	return Some(f(m.value))
}

// Bind applies a Maybe-returning function to the contained value if present.
// An empty input short-circuits to None without invoking f.
func Bind[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if m.IsNone() {
		return None[U]()
	}
	return f(m.value)
}

// Join flattens a nested Maybe.
func Join[T any](m Maybe[Maybe[T]]) Maybe[T] {
	if m.IsNone() {
		return None[T]()
	}
	return m.value
}

// Equal reports whether two Maybe values are both empty or both hold equal
// values.
func Equal[T comparable](a, b Maybe[T]) bool {
	if a.some != b.some {
		return false
	}
	return !a.some || a.value == b.value
}

package result

import "fmt"

// UnwrapError is the panic value raised by Unwrap when called on an Err
// result. It wraps the original error for errors.As inspection in recover
// handlers.
type UnwrapError struct {
	Err error
}

func (e *UnwrapError) Error() string {
	return fmt.Sprintf("result: unwrap called on Err: %v", e.Err)
}

func (e *UnwrapError) Unwrap() error {
	return e.Err
}

// Result represents either a success carrying a value (Ok) or a failure
// carrying an error (Err). The two arms are mutually exclusive and a Result
// is immutable once constructed. The zero value is Ok with T's zero value;
// prefer the constructors.
type Result[T any] struct {
	value T
	err   error
}

// Ok creates a successful Result.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err creates a failed Result. A nil error is normalized to a non-nil
// placeholder so that the failure cannot be mistaken for success.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = fmt.Errorf("result: Err constructed with nil error")
	}
	return Result[T]{err: err}
}

// Errf creates a failed Result from a format string.
func Errf[T any](format string, args ...any) Result[T] {
	return Err[T](fmt.Errorf(format, args...))
}

// From lifts a conventional (value, error) return into a Result.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// When creates Ok(v) if cond is true, otherwise Err(err).
func When[T any](cond bool, v T, err error) Result[T] {
	if cond {
		return Ok(v)
	}
	return Err[T](err)
}

// IsOk reports whether the Result is a success.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the Result is a failure.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Err returns the contained error, or nil when the Result is Ok.
func (r Result[T]) Err() error {
	return r.err
}

// Bind chains a Result-returning function onto the Ok arm. An Err input
// short-circuits: f is never invoked and the failure passes through
// unchanged.
func (r Result[T]) Bind(f func(T) Result[T]) Result[T] {
	if r.err != nil {
		return r
	}
	return f(r.value)
}

// Map lifts a plain transformation into the Ok arm. An Err input passes
// through unchanged without invoking f.
func (r Result[T]) Map(f func(T) T) Result[T] {
	if r.err != nil {
		return r
	}
	return Ok(f(r.value))
}

// BindIf chains f only when the Result is Ok and cond holds for the value;
// otherwise the Result passes through unchanged.
func (r Result[T]) BindIf(cond func(T) bool, f func(T) Result[T]) Result[T] {
	if r.err != nil || !cond(r.value) {
		return r
	}
	return f(r.value)
}

// OrElse chains a recovery function onto the Err arm. An Ok input passes
// through unchanged without invoking f.
func (r Result[T]) OrElse(f func(error) Result[T]) Result[T] {
	if r.err == nil {
		return r
	}
	return f(r.err)
}

// Unwrap returns the contained value. It panics with *UnwrapError when
// called on an Err result; use UnwrapOr or UnwrapOrElse when failure is an
// expected outcome.
func (r Result[T]) Unwrap() T {
	if r.err != nil {
		panic(&UnwrapError{Err: r.err})
	}
	return r.value
}

// UnwrapOr returns the contained value or the provided default.
func (r Result[T]) UnwrapOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// UnwrapOrElse returns the contained value if Ok, otherwise invokes the
// handler with the error and returns its result. It never panics.
func (r Result[T]) UnwrapOrElse(handler func(error) T) T {
	if r.err != nil {
		return handler(r.err)
	}
	return r.value
}

// String renders the Result for debugging.
func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// Bind applies a Result-returning function to the Ok arm, producing a Result
// of the function's value type. An Err input short-circuits without invoking
// f.
func Bind[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return f(r.value)
}

// Map applies a plain transformation to the Ok arm, producing a Result of
// the function's value type.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(f(r.value))
}

// Combine folds a list of Results into one: the first failure wins,
// otherwise all values are collected in order.
func Combine[T any](results ...Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			return Err[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok(values)
}

package domain

import "errors"

// Error is a domain-rule violation: a failure that belongs to the business
// language, not to the infrastructure. It optionally wraps a cause for
// errors.Is/As chains.
type Error struct {
	Message string
	cause   error
}

// NewError creates a domain error with the given message.
func NewError(message string) *Error {
	return &Error{Message: message}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *Error) WithCause(cause error) *Error {
	return &Error{Message: e.Message, cause: cause}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// IsDomainError reports whether err is (or wraps) a domain Error.
func IsDomainError(err error) bool {
	var de *Error
	return errors.As(err, &de)
}

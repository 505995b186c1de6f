package domain

// ValueObject wraps a comparable value that carries no identity: two value
// objects are equal exactly when their values are. The wrapper is immutable;
// deriving a changed value means constructing a new one.
type ValueObject[T comparable] struct {
	value T
}

// NewValueObject wraps a value.
func NewValueObject[T comparable](value T) ValueObject[T] {
	return ValueObject[T]{value: value}
}

// Value returns the wrapped value.
func (v ValueObject[T]) Value() T {
	return v.value
}

// Equals reports value equality.
func (v ValueObject[T]) Equals(other ValueObject[T]) bool {
	return v.value == other.value
}

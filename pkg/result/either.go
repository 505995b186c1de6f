package result

// Either represents a value of one of two possible types: Left or Right.
// By convention the Right arm carries the "expected" value and the Left arm
// carries the alternative, which makes Either a generalization of Result
// where the failure arm is not constrained to be an error.
type Either[L, R any] struct {
	left   L
	right  R
	isLeft bool
}

// Left creates an Either holding a left value.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l, isLeft: true}
}

// Right creates an Either holding a right value.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r}
}

// IsLeft reports whether the Either holds a left value.
func (e Either[L, R]) IsLeft() bool {
	return e.isLeft
}

// IsRight reports whether the Either holds a right value.
func (e Either[L, R]) IsRight() bool {
	return !e.isLeft
}

// Left returns the left value and whether it is present.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, e.isLeft
}

// Right returns the right value and whether it is present.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, !e.isLeft
}

// Map applies a same-type transformation to the right value; a Left passes
// through unchanged.
func (e Either[L, R]) Map(f func(R) R) Either[L, R] {
	if e.isLeft {
		return e
	}
	return Right[L](f(e.right))
}

// MapRight applies a function over the right arm, producing an Either with
// a new right type.
func MapRight[L, R, S any](e Either[L, R], f func(R) S) Either[L, S] {
	if e.isLeft {
		return Left[L, S](e.left)
	}
	return Right[L](f(e.right))
}

// BindRight chains an Either-returning function onto the right arm. A Left
// input short-circuits without invoking f.
func BindRight[L, R, S any](e Either[L, R], f func(R) Either[L, S]) Either[L, S] {
	if e.isLeft {
		return Left[L, S](e.left)
	}
	return f(e.right)
}

// Match folds both arms into a single value.
func Match[L, R, S any](e Either[L, R], onLeft func(L) S, onRight func(R) S) S {
	if e.isLeft {
		return onLeft(e.left)
	}
	return onRight(e.right)
}

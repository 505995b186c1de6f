// Package result provides a two-armed Result type for composing fallible
// computations without intermediate error checks, plus a general Either type
// for disjoint unions.
//
// A Result[T] is either Ok (success carrying a value of type T) or Err
// (failure carrying an error). Results are immutable: chaining operations
// consume the prior Result and produce a new one. A chain of Bind calls
// short-circuits at the first Err, so only the first failure in a dependency
// chain is surfaced and later stages are never evaluated. This is the
// mechanism by which guard failures abort object construction before any
// side effects occur.
//
// # Usage
//
//	func NewEmail(raw string) result.Result[Email] { ... }
//
//	r := NewEmail(input).
//		Map(normalize).
//		Bind(checkDomain)
//
//	email := r.UnwrapOrElse(func(err error) Email {
//		return fallback
//	})
//
// The error arm is the ordinary error interface, so failure reports and
// structured errors flow through unchanged and remain inspectable with
// errors.Is and errors.As. Every chain must terminate in Unwrap (fails loud
// on Err), UnwrapOr, or UnwrapOrElse (recovers) — a Result must never be
// silently dropped.
//
// Type-changing composition is exposed as package-level generics
// (result.Bind, result.Map) because Go methods cannot introduce new type
// parameters; the methods of the same names chain within a single type.
package result

// Package maybe provides a generic optional value type for representing
// presence or absence without nil pointers or sentinel values.
//
// A Maybe[T] is either Some (a value is present) or None (no value). It is
// immutable once constructed and safe to copy. The primary use case in this
// kit is expressing "identity not yet assigned" when constructing entities,
// but it works for any optional field or return value.
//
// # Usage
//
//	id := maybe.None[domain.ID]()
//	if fromDB {
//	    id = maybe.Some(existingID)
//	}
//	value := id.OrElse(defaultID)
//
// Transformations that change the contained type are package-level functions
// (maybe.Map, maybe.Bind) because Go methods cannot introduce new type
// parameters. Same-type transformations are available as methods.
package maybe

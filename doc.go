// Package domainkit is a collection of small, independent packages for
// building rich domain models in Go: functional composition primitives, a
// declarative validation engine, and an in-process domain-event dispatcher.
//
// Each package under pkg/ stands alone and can be adopted separately:
//
//   - pkg/maybe — optional values without nil pointers (Some/None)
//   - pkg/result — two-armed success/failure values with monadic composition
//   - pkg/guard — a compact rule-string DSL for field validation
//     ("required|between[2, 50]"), with an extensible rule registry
//   - pkg/event — synchronous dispatch of domain events recorded by
//     aggregates
//   - pkg/domain — identifiers, entities, aggregate roots, value objects,
//     change-tracked lists, and a use case contract
//
// Basic Usage:
//
//	spec := guard.NewSpec().
//		Field("name", "required|between[2, 50]").
//		Field("age", "required|positive|lt[130]")
//
//	res := guard.Evaluate(map[string]any{"name": name, "age": age}, spec)
//	if res.IsErr() {
//		var report guard.FailureReport
//		errors.As(res.Err(), &report)
//		// report holds every failed field, in declaration order
//	}
//
// The packages follow these principles:
//   - Invalid states are unrepresentable: constructors return Result
//   - Explicit over implicit: registries and dispatchers are plain values
//   - Composition over inheritance: aggregate roots embed, never subclass
package domainkit

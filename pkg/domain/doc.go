// Package domain provides the building blocks for a rich domain model:
// identifiers, entities, aggregate roots, value objects, change-tracked
// collections, and a use case contract.
//
// Entities carry identity across state changes and compare by ID; value
// objects carry no identity and compare by value. An aggregate root is an
// entity that also records domain events for later dispatch (see the event
// package). Construction sites return result.Result so invalid states are
// unrepresentable:
//
//	type accountProps struct {
//		Email string
//	}
//
//	type Account struct {
//		*domain.AggregateRoot[accountProps]
//	}
//
//	func NewAccount(email string) result.Result[Account] {
//		res, err := guard.Check("email", email, `required|regex[r"@"]`)
//		if err != nil {
//			return result.Err[Account](err)
//		}
//		if !res.Satisfied() {
//			return result.Errf[Account]("%s", res.Message())
//		}
//		root := domain.NewAggregateRoot(accountProps{Email: email}, maybe.None[domain.ID]())
//		return result.Ok(Account{AggregateRoot: root})
//	}
package domain

// Package event provides a synchronous in-process dispatcher for domain
// events. Aggregates record events as they mutate; a repository or
// application service triggers the dispatcher after persisting, which drains
// the aggregate's queue and invokes the bound handlers.
//
// An event's type identity is its qualified struct name, so handlers built
// with NewHandler bind to exactly one concrete event type:
//
//	type UserRegistered struct {
//		UserID uuid.UUID
//	}
//
//	func (e UserRegistered) AggregateID() uuid.UUID { return e.UserID }
//
//	dispatcher := event.NewDispatcher()
//	unbind := dispatcher.Bind(event.NewHandler(func(e UserRegistered) error {
//		return mailer.SendWelcome(e.UserID)
//	}))
//	defer unbind()
//
//	var user Account // embeds event.Recorder
//	user.Remind(UserRegistered{UserID: user.ID.UUID()})
//
//	if err := dispatcher.Trigger(&user); err != nil {
//		// a handler failed; remaining dispatch was aborted
//	}
//
// Dispatch is synchronous and single-goroutine: handlers run in binding
// order, events in FIFO order, and a handler error aborts the remaining
// dispatch for that Trigger call (propagation, not isolation). The source
// queue is drained before any handler runs, so a mid-dispatch failure never
// leaves events behind for accidental replay.
//
// Bind and Trigger are safe for concurrent use; Recorder is not, matching
// the single-writer discipline of the aggregates that embed it.
package event

package event

// Source hands over pending events for dispatch. Pulling transfers
// ownership: the source's queue is empty afterwards.
type Source interface {
	PullEvents() []Event
}

// Recorder is the aggregate-side half of the dispatcher: an ordered queue of
// pending events. Embed it in an aggregate root and call Remind from the
// methods that change state; a Trigger call drains it.
//
// Recorder is not safe for concurrent use. An aggregate has a single writer
// at a time, and the zero value is ready to use.
type Recorder struct {
	pending []Event
}

// Remind queues an event for later dispatch. Ownership of the event passes
// to the queue.
func (r *Recorder) Remind(e Event) {
	r.pending = append(r.pending, e)
}

// PullEvents returns the queued events in FIFO order and clears the queue.
func (r *Recorder) PullEvents() []Event {
	events := r.pending
	r.pending = nil
	return events
}

// Pending returns the number of queued events.
func (r *Recorder) Pending() int {
	return len(r.pending)
}

// ClearEvents drops the queued events without dispatching them.
func (r *Recorder) ClearEvents() {
	r.pending = nil
}

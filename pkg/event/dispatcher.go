package event

import (
	"io"
	"log/slog"
	"sync"
)

// Dispatcher routes events to the handlers bound to their type. Handlers for
// a type run synchronously in binding order. Bind, Dispatch, and Trigger are
// safe for concurrent use, though the expected discipline is bind-once at
// startup, dispatch during request processing.
type Dispatcher struct {
	mu       sync.RWMutex
	bindings map[string][]*binding
	log      *slog.Logger
}

type binding struct {
	handler Handler
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger enables debug logging of dispatches.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// NewDispatcher creates a dispatcher with no bindings.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		bindings: make(map[string][]*binding),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Bind appends the handler to the list for its event type and returns an
// unbind function. Binding the same handler twice dispatches it twice;
// deduplication is the caller's responsibility.
func (d *Dispatcher) Bind(h Handler) (unbind func()) {
	b := &binding{handler: h}

	d.mu.Lock()
	name := h.EventName()
	d.bindings[name] = append(d.bindings[name], b)
	d.mu.Unlock()

	d.log.Debug("handler bound", "event", name)

	var once sync.Once
	return func() {
		once.Do(func() { d.unbind(name, b) })
	}
}

func (d *Dispatcher) unbind(name string, b *binding) {
	d.mu.Lock()
	defer d.mu.Unlock()

	list := d.bindings[name]
	for i, cur := range list {
		if cur == b {
			d.bindings[name] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(d.bindings[name]) == 0 {
		delete(d.bindings, name)
	}
}

// Dispatch invokes every handler bound to the event's type, in binding
// order. The first handler error aborts the rest and is returned. An event
// type with no handlers dispatches to nobody and returns nil.
func (d *Dispatcher) Dispatch(e Event) error {
	name := NameOf(e)

	d.mu.RLock()
	list := d.bindings[name]
	handlers := make([]Handler, len(list))
	for i, b := range list {
		handlers[i] = b.handler
	}
	d.mu.RUnlock()

	d.log.Debug("dispatching event", "event", name, "handlers", len(handlers))

	for _, h := range handlers {
		if err := h.Handle(e); err != nil {
			d.log.Debug("handler failed", "event", name, "error", err)
			return err
		}
	}
	return nil
}

// Trigger drains the source's pending events and dispatches each in FIFO
// order. The queue is drained before any handler runs: a handler error
// aborts the remaining dispatch for this call, but the already-pulled events
// are not re-queued, so a retried Trigger never replays them.
func (d *Dispatcher) Trigger(src Source) error {
	for _, e := range src.PullEvents() {
		if err := d.Dispatch(e); err != nil {
			return err
		}
	}
	return nil
}

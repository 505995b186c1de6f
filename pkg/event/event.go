package event

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Event is something that happened in the domain, carrying the identifier of
// the aggregate it happened to. Concrete events are plain structs.
type Event interface {
	AggregateID() uuid.UUID
}

// NameOf returns the event's type identity: its qualified struct name,
// without a pointer marker, e.g. "billing.InvoicePaid".
func NameOf(e Event) string {
	return qualifiedStructName(e)
}

func qualifiedStructName(v any) string {
	return strings.TrimLeft(fmt.Sprintf("%T", v), "*")
}

// Handler processes events of a single type, identified by EventName.
type Handler interface {
	EventName() string
	Handle(e Event) error
}

// HandlerFunc is the function form of a handler for a concrete event type.
type HandlerFunc[T Event] func(e T) error

// NewHandler adapts a typed function into a Handler. The event name is
// derived from T, so the handler binds to exactly that type.
func NewHandler[T Event](fn HandlerFunc[T]) Handler {
	var zero T
	return &typedHandler[T]{
		name: qualifiedStructName(zero),
		fn:   fn,
	}
}

type typedHandler[T Event] struct {
	name string
	fn   HandlerFunc[T]
}

func (h *typedHandler[T]) EventName() string {
	return h.name
}

func (h *typedHandler[T]) Handle(e Event) error {
	typed, ok := e.(T)
	if !ok {
		return fmt.Errorf("event: handler for %s received %s", h.name, NameOf(e))
	}
	return h.fn(typed)
}

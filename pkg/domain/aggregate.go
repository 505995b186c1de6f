package domain

import (
	"github.com/forgecrafted/domainkit/pkg/event"
	"github.com/forgecrafted/domainkit/pkg/maybe"
)

// AggregateRoot is the entry point of an aggregate: an entity that also
// records the domain events raised by its state changes. Call Remind from
// mutating methods and hand the aggregate to a dispatcher's Trigger after
// persisting.
type AggregateRoot[P any] struct {
	Entity[P]
	event.Recorder
}

// NewAggregateRoot creates an aggregate root with an empty event queue. The
// id rules follow NewEntity: None assigns a fresh identifier.
func NewAggregateRoot[P any](props P, id maybe.Maybe[ID]) *AggregateRoot[P] {
	return &AggregateRoot[P]{Entity: NewEntity(props, id)}
}

package domain

import (
	"github.com/forgecrafted/domainkit/pkg/maybe"
)

// Entity is an object defined by identity rather than by attribute values:
// two entities with the same ID are the same entity, whatever their props
// say. Props hold the entity's attributes as a plain struct.
type Entity[P any] struct {
	id    ID
	props P
}

// NewEntity creates an entity. Pass maybe.None for the id when the entity is
// new and a fresh identifier should be assigned; pass maybe.Some when
// rehydrating a persisted entity.
func NewEntity[P any](props P, id maybe.Maybe[ID]) Entity[P] {
	return Entity[P]{
		id:    id.OrElseGet(NewID),
		props: props,
	}
}

// ID returns the entity's identifier.
func (e Entity[P]) ID() ID {
	return e.id
}

// Props returns the entity's attributes.
func (e Entity[P]) Props() P {
	return e.props
}

// SetProps replaces the entity's attributes. Identity is untouched.
func (e *Entity[P]) SetProps(props P) {
	e.props = props
}

// Equals reports identity equality: same ID, same entity.
func (e Entity[P]) Equals(other Entity[P]) bool {
	return e.id == other.id
}

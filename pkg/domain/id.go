package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// ID identifies an entity. It is UUID-backed and comparable, so entities can
// key maps and compare by identity.
type ID uuid.UUID

// NewID generates a random identifier.
func NewID() ID {
	return ID(uuid.New())
}

// ParseID parses the canonical string form of an identifier.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, fmt.Errorf("domain: parsing id %q: %w", s, err)
	}
	return ID(u), nil
}

// MustParseID is ParseID that panics on invalid input, for literals in tests
// and fixtures.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether the identifier is the zero value, i.e. unassigned.
func (id ID) IsZero() bool {
	return id == ID{}
}

// UUID returns the underlying uuid.UUID.
func (id ID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

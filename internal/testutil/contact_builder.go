package testutil

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/hupe1980/agenda/core"
)

// ContactBuilder provides a fluent helper for constructing contacts in tests.
// Example:
//
//	c := NewContactBuilder("Alma Prat").Identifier("55.443.563").Born(2016, time.June, 7).Build()
//
// Unset fields default to an identifier derived from the name and 1 Jan 2000.
type ContactBuilder struct {
	name       string
	identifier string
	birthDate  civil.Date
}

// NewContactBuilder creates a builder for a contact with the given name.
func NewContactBuilder(name string) *ContactBuilder {
	return &ContactBuilder{
		name:      name,
		birthDate: civil.Date{Year: 2000, Month: time.January, Day: 1},
	}
}

// Identifier sets the unique key (chainable).
func (b *ContactBuilder) Identifier(id string) *ContactBuilder { b.identifier = id; return b }

// Born sets the birth date (chainable).
func (b *ContactBuilder) Born(year int, month time.Month, day int) *ContactBuilder {
	b.birthDate = civil.Date{Year: year, Month: month, Day: day}
	return b
}

// Build constructs the *core.Contact.
func (b *ContactBuilder) Build() *core.Contact {
	id := b.identifier
	if id == "" {
		id = "id-" + b.name
	}
	return core.NewContact(b.name, id, b.birthDate)
}

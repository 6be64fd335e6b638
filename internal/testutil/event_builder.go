package testutil

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/hupe1980/agenda/core"
)

// EventBuilder provides a fluent helper for constructing events in tests.
// Example:
//
//	ev := NewEventBuilder("Birthday").On(2024, time.June, 7).Invite(alma).Build()
type EventBuilder struct {
	name      string
	date      civil.Date
	attendees []*core.Contact
}

// NewEventBuilder creates a builder for an event dated 1 Jan 2024.
func NewEventBuilder(name string) *EventBuilder {
	return &EventBuilder{name: name, date: civil.Date{Year: 2024, Month: time.January, Day: 1}}
}

// On sets the event date (chainable).
func (b *EventBuilder) On(year int, month time.Month, day int) *EventBuilder {
	b.date = civil.Date{Year: year, Month: month, Day: day}
	return b
}

// Invite appends initial attendees (chainable).
func (b *EventBuilder) Invite(contacts ...*core.Contact) *EventBuilder {
	b.attendees = append(b.attendees, contacts...)
	return b
}

// Build constructs the *core.Event.
func (b *EventBuilder) Build() *core.Event {
	return core.NewEvent(b.name, b.date, b.attendees...)
}

// AgendaFixture is the shared scenario used across directory tests: four
// registered contacts, one unregistered contact (Juan) and a birthday event
// inviting Alma.
type AgendaFixture struct {
	Demian   *core.Contact
	Alma     *core.Contact
	Karina   *core.Contact
	Gaston   *core.Contact
	Juan     *core.Contact
	Birthday *core.Event
}

// NewAgendaFixture builds fresh fixture values. Registration order expected by
// tests is Alma, Demian, Karina, Gaston (see Registered).
func NewAgendaFixture() *AgendaFixture {
	f := &AgendaFixture{
		Demian: NewContactBuilder("Demian Castañeda").Identifier("44.121.248").Born(2002, time.June, 27).Build(),
		Alma:   NewContactBuilder("Alma Prat").Identifier("55.443.563").Born(2016, time.June, 7).Build(),
		Karina: NewContactBuilder("Karina Reyes").Identifier("31.244.321").Born(1984, time.September, 21).Build(),
		Gaston: NewContactBuilder("Gaston Prat").Identifier("36.324.556").Born(1992, time.June, 11).Build(),
		Juan:   NewContactBuilder("Juan Perez").Identifier("13.123.456").Born(1949, time.December, 3).Build(),
	}
	f.Birthday = NewEventBuilder("Alma's birthday").On(2024, time.June, 7).Invite(f.Alma).Build()
	return f
}

// Registered returns the contacts to add to a directory, in order.
func (f *AgendaFixture) Registered() []*core.Contact {
	return []*core.Contact{f.Alma, f.Demian, f.Karina, f.Gaston}
}

package core

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Event is a dated occasion with an ordered attendee list.
//
// Contract:
//   - Attendees returns a defensive copy so callers cannot mutate the list
//   - AddAttendee appends unconditionally; duplicate and referential checks
//     belong to the owning directory
//   - RemoveAttendee tolerates absent contacts
//
// Events are handled by pointer. The ID is for log correlation only; a
// directory compares events by pointer identity.
type Event struct {
	id        string
	name      string
	date      civil.Date
	attendees []*Contact
}

// NewEvent creates an event with an optional initial attendee sequence. The
// sequence is copied; nil entries and repeated contacts are dropped.
func NewEvent(name string, date civil.Date, attendees ...*Contact) *Event {
	return &Event{
		id:        NewID(),
		name:      name,
		date:      date,
		attendees: lo.Uniq(lo.Filter(attendees, func(c *Contact, _ int) bool { return c != nil })),
	}
}

// NewID generates a new unique identifier for events.
func NewID() string { return uuid.NewString() }

// ID returns the correlation identifier assigned at construction.
func (e *Event) ID() string { return e.id }

// Name returns the event name.
func (e *Event) Name() string { return e.name }

// Date returns the calendar date of the event.
func (e *Event) Date() civil.Date { return e.date }

// Attendees returns a copy of the attendee list in invitation order.
func (e *Event) Attendees() []*Contact {
	attendees := make([]*Contact, len(e.attendees))
	copy(attendees, e.attendees)
	return attendees
}

// AttendeeCount returns the number of attendees.
func (e *Event) AttendeeCount() int { return len(e.attendees) }

// HasAttendee reports whether c is on the attendee list.
func (e *Event) HasAttendee(c *Contact) bool { return lo.Contains(e.attendees, c) }

// AddAttendee appends c to the attendee list.
func (e *Event) AddAttendee(c *Contact) {
	e.attendees = append(e.attendees, c)
}

// RemoveAttendee removes the first occurrence of c and reports whether it was
// present.
func (e *Event) RemoveAttendee(c *Contact) bool {
	i := lo.IndexOf(e.attendees, c)
	if i < 0 {
		return false
	}
	e.attendees = append(e.attendees[:i], e.attendees[i+1:]...)
	return true
}

func (e *Event) String() string {
	names := lo.Map(e.attendees, func(c *Contact, _ int) string { return c.Name() })
	return fmt.Sprintf("Event{name=%q, date=%s, attendees=[%s]}", e.name, e.date, strings.Join(names, ", "))
}

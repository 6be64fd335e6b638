package core

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) civil.Date { return civil.Date{Year: y, Month: m, Day: d} }

func TestEvent_Constructor(t *testing.T) {
	alma := NewContact("Alma Prat", "55.443.563", date(2016, time.June, 7))

	e := NewEvent("Birthday", date(2024, time.June, 7), alma)
	assert.NotEmpty(t, e.ID())
	assert.Equal(t, "Birthday", e.Name())
	assert.Equal(t, date(2024, time.June, 7), e.Date())
	assert.Equal(t, []*Contact{alma}, e.Attendees())

	empty := NewEvent("Christmas", date(2024, time.December, 25))
	assert.NotNil(t, empty.Attendees())
	assert.Equal(t, 0, empty.AttendeeCount())

	withNil := NewEvent("Christmas", date(2024, time.December, 25), nil, alma, nil, alma)
	assert.Equal(t, []*Contact{alma}, withNil.Attendees())
}

func TestEvent_IDUniqueness(t *testing.T) {
	a := NewEvent("a", date(2024, time.January, 1))
	b := NewEvent("a", date(2024, time.January, 1))
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestEvent_ConstructorCopiesInput(t *testing.T) {
	alma := NewContact("Alma Prat", "1", date(2016, time.June, 7))
	juan := NewContact("Juan Perez", "2", date(1949, time.December, 3))
	invited := []*Contact{alma}

	e := NewEvent("Birthday", date(2024, time.June, 7), invited...)
	invited[0] = juan

	assert.Same(t, alma, e.Attendees()[0])
}

func TestEvent_AttendeesIsolation(t *testing.T) {
	alma := NewContact("Alma Prat", "1", date(2016, time.June, 7))
	juan := NewContact("Juan Perez", "2", date(1949, time.December, 3))
	e := NewEvent("Birthday", date(2024, time.June, 7), alma)

	view := e.Attendees()
	view[0] = juan
	_ = append(view, juan)

	require.Equal(t, 1, e.AttendeeCount())
	assert.Same(t, alma, e.Attendees()[0])
}

func TestEvent_AddRemoveAttendee(t *testing.T) {
	alma := NewContact("Alma Prat", "1", date(2016, time.June, 7))
	karina := NewContact("Karina Reyes", "2", date(1984, time.September, 21))
	gaston := NewContact("Gaston Prat", "3", date(1992, time.June, 11))
	e := NewEvent("Birthday", date(2024, time.June, 7))

	e.AddAttendee(alma)
	e.AddAttendee(karina)
	e.AddAttendee(gaston)
	assert.Equal(t, []*Contact{alma, karina, gaston}, e.Attendees())
	assert.True(t, e.HasAttendee(karina))

	assert.True(t, e.RemoveAttendee(karina))
	assert.False(t, e.HasAttendee(karina))
	assert.Equal(t, []*Contact{alma, gaston}, e.Attendees())

	// absent contact is tolerated
	assert.False(t, e.RemoveAttendee(karina))
	assert.Equal(t, 2, e.AttendeeCount())
}

func TestEvent_IdentityNotValue(t *testing.T) {
	alma := NewContact("Alma Prat", "1", date(2016, time.June, 7))
	twin := NewContact("Alma Prat", "1", date(2016, time.June, 7))
	e := NewEvent("Birthday", date(2024, time.June, 7), alma)

	assert.False(t, e.HasAttendee(twin))
	assert.False(t, e.RemoveAttendee(twin))
	assert.Equal(t, 1, e.AttendeeCount())
}

func TestEvent_String(t *testing.T) {
	alma := NewContact("Alma Prat", "1", date(2016, time.June, 7))
	gaston := NewContact("Gaston Prat", "3", date(1992, time.June, 11))

	e := NewEvent("Birthday", date(2024, time.June, 7), alma, gaston)
	assert.Equal(t, `Event{name="Birthday", date=2024-06-07, attendees=[Alma Prat, Gaston Prat]}`, e.String())

	empty := NewEvent("Christmas", date(2024, time.December, 25))
	assert.Equal(t, `Event{name="Christmas", date=2024-12-25, attendees=[]}`, empty.String())
}

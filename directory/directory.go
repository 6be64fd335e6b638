package directory

import (
	"fmt"
	"slices"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/samber/lo"
	"golang.org/x/text/cases"

	"github.com/hupe1980/agenda/core"
	"github.com/hupe1980/agenda/logging"
)

// Options configures a Directory.
type Options struct {
	// Logger receives mutation (info) and rejection (debug) records.
	// Defaults to a NoOp logger if nil.
	Logger logging.Logger

	// StrictValidation makes AddContact reject contacts that fail
	// core.Contact.Validate before the duplicate check runs.
	StrictValidation bool
}

// Directory owns the registered contacts and events and enforces the
// invariants between them:
//   - no two contacts share an identifier
//   - an event is registered at most once
//   - every attendee of a registered event is a registered contact
//   - removing a contact removes it from every registered event
//
// Every operation validates all preconditions before mutating anything, so a
// failed call leaves the directory unchanged. Contacts and events are compared
// by pointer identity, except for duplicate detection in AddContact which
// compares identifiers.
//
// A Directory is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
type Directory struct {
	opts     Options
	log      logging.Logger
	contacts []*core.Contact
	events   []*core.Event
}

// New creates an empty Directory with optional overrides.
func New(optFns ...func(o *Options)) *Directory {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Directory{
		opts:     opts,
		log:      opts.Logger,
		contacts: []*core.Contact{},
		events:   []*core.Event{},
	}
}

// AddContact registers c. It fails with ErrDuplicateContact when a contact
// with the same identifier is already registered.
func (d *Directory) AddContact(c *core.Contact) error {
	if c == nil {
		return d.reject("add_contact", fmt.Errorf("%w: nil contact", core.ErrInvalidContact))
	}

	if d.opts.StrictValidation {
		if err := c.Validate(); err != nil {
			return d.reject("add_contact", err)
		}
	}

	if lo.ContainsBy(d.contacts, func(existing *core.Contact) bool {
		return existing.Identifier() == c.Identifier()
	}) {
		return d.reject("add_contact", fmt.Errorf("%w: identifier %q", ErrDuplicateContact, c.Identifier()))
	}

	d.contacts = append(d.contacts, c)
	d.log.Info("Contact added", "identifier", c.Identifier(), "contacts", len(d.contacts))

	return nil
}

// RemoveContact unregisters c and removes it from the attendee list of every
// event. It fails with ErrContactNotFound when c is not registered.
func (d *Directory) RemoveContact(c *core.Contact) error {
	i := lo.IndexOf(d.contacts, c)
	if i < 0 {
		return d.reject("remove_contact", fmt.Errorf("%w: %s", ErrContactNotFound, contactLabel(c)))
	}

	d.contacts = append(d.contacts[:i], d.contacts[i+1:]...)

	updated := 0
	for _, e := range d.events {
		removed := false
		for e.RemoveAttendee(c) {
			removed = true
		}
		if removed {
			updated++
		}
	}

	d.log.Info("Contact removed", "identifier", c.Identifier(), "contacts", len(d.contacts), "events_updated", updated)

	return nil
}

// FindContactByName returns the first registered contact whose name matches
// name under Unicode case folding.
func (d *Directory) FindContactByName(name string) (*core.Contact, error) {
	folder := cases.Fold()
	key := folder.String(name)

	c, ok := lo.Find(d.contacts, func(c *core.Contact) bool {
		return folder.String(c.Name()) == key
	})
	if !ok {
		return nil, d.reject("find_contact_by_name", fmt.Errorf("%w: name %q", ErrContactNotFound, name))
	}

	return c, nil
}

// FindContactByIdentifier returns the contact registered under id.
func (d *Directory) FindContactByIdentifier(id string) (*core.Contact, error) {
	c, ok := lo.Find(d.contacts, func(c *core.Contact) bool {
		return c.Identifier() == id
	})
	if !ok {
		return nil, d.reject("find_contact_by_identifier", fmt.Errorf("%w: identifier %q", ErrContactNotFound, id))
	}

	return c, nil
}

// ListContactsByBirthDate returns the contacts oldest first. Contacts born on
// the same day keep their registration order.
func (d *Directory) ListContactsByBirthDate() ([]*core.Contact, error) {
	return d.sortedContacts("list_contacts_by_birth_date", func(a, b *core.Contact) int {
		return compareDates(a.BirthDate(), b.BirthDate())
	})
}

// ListContactsByName returns the contacts in lexicographic name order.
// Contacts with equal names keep their registration order.
func (d *Directory) ListContactsByName() ([]*core.Contact, error) {
	return d.sortedContacts("list_contacts_by_name", func(a, b *core.Contact) int {
		return strings.Compare(a.Name(), b.Name())
	})
}

// ContactCount returns the number of registered contacts.
func (d *Directory) ContactCount() int {
	return len(d.contacts)
}

// ContactExists reports whether c itself is registered.
func (d *Directory) ContactExists(c *core.Contact) bool {
	return lo.Contains(d.contacts, c)
}

// Clear drops every contact and event.
func (d *Directory) Clear() {
	d.log.Info("Directory cleared", "contacts", len(d.contacts), "events", len(d.events))

	d.contacts = []*core.Contact{}
	d.events = []*core.Event{}
}

// CreateEvent registers e. Every initial attendee of e must be a registered
// contact; otherwise it fails with ErrContactNotFound naming the first
// missing one. Registering the same event twice fails with ErrDuplicateEvent.
func (d *Directory) CreateEvent(e *core.Event) error {
	if e == nil {
		return d.reject("create_event", fmt.Errorf("%w: nil event", ErrInvalidEvent))
	}

	if missing, ok := lo.Find(e.Attendees(), func(c *core.Contact) bool {
		return !d.ContactExists(c)
	}); ok {
		return d.reject("create_event", fmt.Errorf("%w: attendee %s of event %q", ErrContactNotFound, contactLabel(missing), e.Name()))
	}

	if lo.Contains(d.events, e) {
		return d.reject("create_event", fmt.Errorf("%w: %q", ErrDuplicateEvent, e.Name()))
	}

	d.events = append(d.events, e)
	d.log.Info("Event created", "event_id", e.ID(), "event", e.Name(), "attendees", e.AttendeeCount())

	return nil
}

// AddAttendee invites c to e. Checks run in a fixed order: e must be
// registered (ErrEventNotFound), c must not already attend
// (ErrAlreadyInvited) and c must be registered (ErrContactNotFound).
func (d *Directory) AddAttendee(e *core.Event, c *core.Contact) error {
	if !d.eventExists(e) {
		return d.reject("add_attendee", fmt.Errorf("%w: %s", ErrEventNotFound, eventLabel(e)))
	}

	if e.HasAttendee(c) {
		return d.reject("add_attendee", fmt.Errorf("%w: %s to %q", ErrAlreadyInvited, contactLabel(c), e.Name()))
	}

	if !d.ContactExists(c) {
		return d.reject("add_attendee", fmt.Errorf("%w: %s", ErrContactNotFound, contactLabel(c)))
	}

	e.AddAttendee(c)
	d.log.Info("Attendee added", "event_id", e.ID(), "identifier", c.Identifier(), "attendees", e.AttendeeCount())

	return nil
}

// RemoveAttendee uninvites c from e. It fails with ErrEventNotFound when e is
// not registered and with ErrContactNotInEvent when c does not attend e.
func (d *Directory) RemoveAttendee(e *core.Event, c *core.Contact) error {
	if !d.eventExists(e) {
		return d.reject("remove_attendee", fmt.Errorf("%w: %s", ErrEventNotFound, eventLabel(e)))
	}

	if !e.HasAttendee(c) {
		return d.reject("remove_attendee", fmt.Errorf("%w: %s from %q", ErrContactNotInEvent, contactLabel(c), e.Name()))
	}

	e.RemoveAttendee(c)
	d.log.Info("Attendee removed", "event_id", e.ID(), "identifier", c.Identifier(), "attendees", e.AttendeeCount())

	return nil
}

// ListEvents returns the registered events in creation order. The slice is a
// snapshot and safe for caller mutation.
func (d *Directory) ListEvents() ([]*core.Event, error) {
	if len(d.events) == 0 {
		return nil, d.reject("list_events", ErrEmptyEventDirectory)
	}

	return slices.Clone(d.events), nil
}

func (d *Directory) eventExists(e *core.Event) bool {
	return e != nil && lo.Contains(d.events, e)
}

func (d *Directory) sortedContacts(op string, cmp func(a, b *core.Contact) int) ([]*core.Contact, error) {
	if len(d.contacts) == 0 {
		return nil, d.reject(op, ErrEmptyContactDirectory)
	}

	defer logging.StartTimer(d.log, op)()

	sorted := slices.Clone(d.contacts)
	slices.SortStableFunc(sorted, cmp)

	return sorted, nil
}

// reject logs a failed precondition and returns err unchanged.
func (d *Directory) reject(op string, err error) error {
	d.log.Debug("Operation rejected", "operation", op, "error", err)
	return err
}

func compareDates(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case b.Before(a):
		return 1
	default:
		return 0
	}
}

func contactLabel(c *core.Contact) string {
	if c == nil {
		return "<nil contact>"
	}
	return fmt.Sprintf("%q (%s)", c.Name(), c.Identifier())
}

func eventLabel(e *core.Event) string {
	if e == nil {
		return "<nil event>"
	}
	return fmt.Sprintf("%q", e.Name())
}

package core

import (
	"errors"
	"fmt"
	"reflect"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidContact is returned when a contact is nil or misses required
// attributes.
var ErrInvalidContact = errors.New("invalid contact")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// civil.Date is validated through its canonical string form; an invalid
	// calendar date maps to "" so `required` rejects it.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		d, ok := field.Interface().(civil.Date)
		if !ok || !d.IsValid() {
			return ""
		}
		return d.String()
	}, civil.Date{})
	return v
}

// Contact is an immutable person record. Contacts are handled by pointer and
// a directory treats two pointers as the same contact only when they are
// identical, even if every field matches.
type Contact struct {
	name       string
	identifier string
	birthDate  civil.Date
}

// NewContact creates a contact. identifier is the unique key (a national ID
// or similar) used for duplicate detection.
func NewContact(name, identifier string, birthDate civil.Date) *Contact {
	return &Contact{name: name, identifier: identifier, birthDate: birthDate}
}

// Name returns the display name.
func (c *Contact) Name() string { return c.name }

// Identifier returns the unique key of the contact.
func (c *Contact) Identifier() string { return c.identifier }

// BirthDate returns the calendar birth date.
func (c *Contact) BirthDate() civil.Date { return c.birthDate }

type contactFields struct {
	Name       string     `validate:"required"`
	Identifier string     `validate:"required"`
	BirthDate  civil.Date `validate:"required"`
}

// Validate reports whether the contact carries a name, an identifier and a
// valid birth date. The returned error wraps ErrInvalidContact.
func (c *Contact) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil contact", ErrInvalidContact)
	}
	if err := validate.Struct(contactFields{Name: c.name, Identifier: c.identifier, BirthDate: c.birthDate}); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContact, err)
	}
	return nil
}

func (c *Contact) String() string {
	return fmt.Sprintf("Contact{name=%q, identifier=%q, birthDate=%s}", c.name, c.identifier, c.birthDate)
}

package directory

import "errors"

var (
	// ErrDuplicateContact is returned when a contact with the same identifier
	// is already registered.
	ErrDuplicateContact = errors.New("duplicate contact")

	// ErrContactNotFound is returned when a looked up, removed or invited
	// contact is not registered in the directory.
	ErrContactNotFound = errors.New("contact not found in directory")

	// ErrContactNotInEvent is returned when removing an attendee the event
	// does not have.
	ErrContactNotInEvent = errors.New("contact not invited to event")

	// ErrAlreadyInvited is returned when inviting a contact that already
	// attends the event.
	ErrAlreadyInvited = errors.New("contact already invited")

	// ErrDuplicateEvent is returned when creating an event that is already
	// part of the directory.
	ErrDuplicateEvent = errors.New("duplicate event")

	// ErrEventNotFound is returned when an operation targets an event the
	// directory does not own.
	ErrEventNotFound = errors.New("event not found in directory")

	// ErrEmptyContactDirectory is returned by contact listings on an empty
	// directory.
	ErrEmptyContactDirectory = errors.New("no contacts in directory")

	// ErrEmptyEventDirectory is returned by event listings on an empty
	// directory.
	ErrEmptyEventDirectory = errors.New("no events in directory")

	// ErrInvalidEvent is returned for nil events.
	ErrInvalidEvent = errors.New("invalid event")
)

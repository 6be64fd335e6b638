// Package core provides the entity types managed by an agenda directory:
//
//   - Contact (immutable person record keyed by an identifier)
//   - Event (dated occasion owning an ordered attendee list)
//
// The entities perform no cross-entity validation. An Event cannot know
// whether an attendee is registered anywhere; that rule and every other
// aggregate invariant is enforced by the directory package, which should be
// the only caller mutating attendee lists of events it owns.
package core

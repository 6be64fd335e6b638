// Package directory houses the agenda coordinator: a Directory owning the
// registered contacts and events and the only component allowed to change
// the relationship between them.
//
// All cross-entity checks (an invited contact must be registered, a removed
// contact disappears from every event) run here before any attendee list is
// touched, so a failed operation never leaves a partial mutation behind.
// Failures are reported with the sentinel errors in errors.go; match them
// with errors.Is.
//
//	dir := directory.New()
//	_ = dir.AddContact(alma)
//	_ = dir.CreateEvent(core.NewEvent("Birthday", date, alma))
package directory

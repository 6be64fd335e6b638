// Package testutil contains helper builders and fixtures used across tests
// to reduce boilerplate when constructing contacts, events and the shared
// agenda scenario. They are not intended for production usage.
package testutil

// Package entity defines the entities and errors used in the application.
// It includes the Record struct, which maps a slug to its target URL, the
// opaque token pair used by the auth subsystem, and the sentinel errors the
// other layers branch on.
package entity

import (
	"errors"
	"time"
)

var (
	// ErrRecordExists is returned when attempting to create a record with a slug that already exists.
	ErrRecordExists = errors.New("record already exists")
	// ErrRecordNotFound is returned when a record with the specified slug or id cannot be found.
	ErrRecordNotFound = errors.New("record not found")
)

// Record represents a slug pointing to a target URL.
type Record struct {
	ID         int64      // ID is the unique identifier of the record in the database.
	Slug       string     // Slug is the short unique key resolving to URL.
	URL        string     // URL is the target the slug resolves to.
	CreatedAt  time.Time  // CreatedAt is the timestamp when the record was created.
	LastUsedAt *time.Time // LastUsedAt is the timestamp of the last successful lookup, nil if never used.
}

package repositories

import "errors"

// Sentinel errors for the data-access layer. Implementations wrap these with
// context so callers can match with errors.Is.
var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned on a unique-constraint violation (slug, email).
	ErrConflict = errors.New("unique constraint violation")
)

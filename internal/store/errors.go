package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
// Raw driver errors never cross the repository boundary: they are logged here
// and wrapped into [ErrUnexpectedDB] so that handlers can show a closed set
// of user-facing messages.
var (
	// ErrUserNotFound is returned when a query expected to match exactly one
	// user row produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrUnexpectedDB is returned when a database operation fails for any
	// reason other than an absent row. The driver's error is attached as the
	// wrapped cause for logging; user-facing code must not surface it.
	ErrUnexpectedDB = errors.New("unexpected database error")
)

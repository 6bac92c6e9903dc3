package session

import "errors"

// ErrSessionNotFound is returned by [Store.Get] when no live session exists
// under the given token. Callers should treat it as "not logged in", not as
// a failure.
var ErrSessionNotFound = errors.New("session not found")

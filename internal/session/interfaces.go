// Package session implements the server-side session store that backs
// browser logins. A session is keyed by an opaque token held by the client
// in a cookie; everything the application knows about the login lives on the
// server side and disappears when the session is destroyed.
//
// Two backends are provided: an in-process map for single-instance
// deployments and tests, and redis for deployments where sessions must
// survive restarts or be shared between instances.
package session

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-admin/models"
	"github.com/google/uuid"
)

// Store is the contract every session backend implements. Handlers receive a
// Store, never a concrete backend.
type Store interface {
	// Get returns the session stored under token. Expired or absent
	// sessions yield ErrSessionNotFound.
	Get(ctx context.Context, token string) (models.Session, error)

	// Set stores session under token for at most ttl.
	Set(ctx context.Context, token string, session models.Session, ttl time.Duration) error

	// Destroy removes the session stored under token. Destroying an absent
	// token is not an error.
	Destroy(ctx context.Context, token string) error
}

// NewToken mints an opaque session token. Tokens carry no meaning; all state
// lives in the store.
func NewToken() string {
	return uuid.NewString()
}

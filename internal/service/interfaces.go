package service

import (
	"context"

	"github.com/MKhiriev/go-user-admin/models"
)

// UserService covers every operation of the users CRUD pages. Form input
// arrives raw (as typed by the user); the service validates it, converts it
// to a [models.User], and delegates persistence to the repository.
type UserService interface {
	// CreateUser validates the submitted form, hashes the password, and
	// inserts a new row. Returns the created user with its assigned id.
	CreateUser(ctx context.Context, form models.UserForm) (models.User, error)

	// GetUser fetches one user by id for the edit form.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// ListUsers returns every user ordered by id.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser validates the submitted form (password excluded) and
	// rewrites name, email and age of the row matching form.ID.
	UpdateUser(ctx context.Context, form models.UserForm) (models.User, error)

	// DeleteUser removes the row matching id and reports how many rows were
	// affected, so callers can tell "deleted" from "was never there".
	DeleteUser(ctx context.Context, id int64) (int64, error)
}

// AuthService verifies login submissions against stored password hashes.
type AuthService interface {
	// Login checks the credentials and returns the matching user.
	// An unknown e-mail and a wrong password are indistinguishable to the
	// caller: both yield ErrInvalidCredentials.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
}

package store

import (
	"context"

	"github.com/MKhiriev/go-user-admin/models"
)

// UserRepository is the data-access contract for the "users" table.
// All methods use parameterized statements; none build SQL from user input.
type UserRepository interface {
	// CreateUser inserts a new row and returns it with the
	// database-assigned id.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// GetUser fetches one row by id. Returns ErrUserNotFound when no row
	// matches.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// ListUsers returns every row ordered by id.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser rewrites name, email and age of the row matching
	// user.UserID. Returns ErrUserNotFound when no row matches.
	UpdateUser(ctx context.Context, user models.User) error

	// DeleteUser removes the row matching id and reports how many rows the
	// statement affected. A zero count is not an error: the caller decides
	// what an already-absent row means.
	DeleteUser(ctx context.Context, id int64) (int64, error)

	// FindUserByEmail fetches one row by e-mail address. When several rows
	// share the address (uniqueness is not enforced), the lowest id wins.
	// Returns ErrUserNotFound when no row matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

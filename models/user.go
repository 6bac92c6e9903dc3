package models

// User represents a single row of the "users" table.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the database-assigned unique identifier of the user.
	// It is immutable once assigned.
	UserID int64 `db:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `db:"name"`

	// Email is the user's e-mail address. Used as the login identifier
	// for authentication. Uniqueness is not enforced at the storage layer.
	Email string `db:"email"`

	// Age is the user's age in years. Handlers keep it within [1, 150];
	// the database itself does not.
	Age int `db:"age"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext.
	PasswordHash string `db:"password_hash"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

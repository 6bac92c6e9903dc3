package models

import "time"

// Session is the server-side state created at successful login and destroyed
// at logout. It is keyed by an opaque token held by the browser in a cookie;
// the token itself is never stored inside the session value.
type Session struct {
	// UserID is the identifier of the authenticated user.
	UserID int64 `json:"user_id"`

	// UserName is the display name captured at login time.
	UserName string `json:"user_name"`

	// UserEmail is the e-mail address captured at login time.
	UserEmail string `json:"user_email"`

	// CreatedAt is the moment the session was established.
	CreatedAt time.Time `json:"created_at"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-user-admin/internal/service"
	"github.com/MKhiriev/go-user-admin/internal/store"
	"github.com/MKhiriev/go-user-admin/internal/validators"
)

// The closed set of messages shown on the rendered pages. Internal failures
// never surface their own text: anything outside the known sentinels falls
// back to msgDatabaseError and the cause goes to the log only.
const (
	msgAllFieldsRequired   = "All fields are required"
	msgInvalidEmail        = "Invalid email format"
	msgAgeOutOfRange       = "Age must be between 1 and 150"
	msgPasswordTooShort    = "Password must be at least 6 characters"
	msgCredentialsRequired = "Email and password are required"
	msgInvalidCredentials  = "Invalid email or password"
	msgUserNotFound        = "User not found"
	msgNoUserIDSpecified   = "No user ID specified"
	msgNoUserFoundWithID   = "No user found with that ID"
	msgUserAdded           = "User added successfully!"
	msgUserUpdated         = "User updated successfully!"
	msgUserDeleted         = "User deleted successfully"
	msgDatabaseError       = "Database error"
)

// userMessage maps an error returned by the service layer to the message
// rendered on the page.
func userMessage(err error) string {
	switch {
	case errors.Is(err, validators.ErrFieldsRequired):
		return msgAllFieldsRequired
	case errors.Is(err, validators.ErrInvalidEmail):
		return msgInvalidEmail
	case errors.Is(err, validators.ErrAgeOutOfRange):
		return msgAgeOutOfRange
	case errors.Is(err, validators.ErrPasswordTooShort):
		return msgPasswordTooShort
	case errors.Is(err, validators.ErrCredentialsRequired):
		return msgCredentialsRequired
	case errors.Is(err, service.ErrInvalidCredentials):
		return msgInvalidCredentials
	case errors.Is(err, store.ErrUserNotFound):
		return msgUserNotFound
	default:
		return msgDatabaseError
	}
}

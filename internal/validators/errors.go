package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrFieldsRequired is returned when any in-scope form field is empty.
	ErrFieldsRequired = errors.New("all fields are required")
	// ErrInvalidEmail is returned when the e-mail field fails the format check.
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrAgeOutOfRange is returned when the age field is not numeric or lies
	// outside [1, 150].
	ErrAgeOutOfRange = errors.New("age must be between 1 and 150")
	// ErrPasswordTooShort is returned when the password is shorter than
	// MinPasswordLength characters.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	// ErrCredentialsRequired is returned when a login submission is missing
	// the e-mail or the password.
	ErrCredentialsRequired = errors.New("email and password are required")
)

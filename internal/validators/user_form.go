package validators

import (
	"context"
	"net/mail"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-user-admin/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping): the update form, for example, carries no
// password field.
const (
	// FieldName targets the display name field of a user form.
	FieldName = "name"

	// FieldEmail targets the e-mail field of a user form.
	FieldEmail = "email"

	// FieldAge targets the age field of a user form.
	FieldAge = "age"

	// FieldPassword targets the password field of a user form.
	FieldPassword = "password"
)

// Age bounds accepted at the handler boundary. The storage layer does not
// enforce them.
const (
	MinAge = 1
	MaxAge = 150
)

// MinPasswordLength is the minimum accepted password length in bytes.
const MinPasswordLength = 6

// allUserFormFields is the default scope when Validate is called without
// explicit field names.
var allUserFormFields = []string{FieldName, FieldEmail, FieldAge, FieldPassword}

// UserFormValidator implements the Validator interface for the submitted-form
// models: UserForm and Credentials. Checks run in a fixed order and
// short-circuit at the first failure, so a form with several problems reports
// exactly one.
//
// Order for UserForm: required fields, e-mail format, age range, password
// length.
type UserFormValidator struct {
}

// NewUserFormValidator constructs a new UserFormValidator
// and returns it as the Validator interface.
func NewUserFormValidator() Validator {
	return &UserFormValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.UserForm / *models.UserForm
//   - models.Credentials / *models.Credentials
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *UserFormValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserForm:
		return v.validateUserForm(value, fields...)
	case *models.UserForm:
		return v.validateUserForm(*value, fields...)
	case models.Credentials:
		return v.validateCredentials(value)
	case *models.Credentials:
		return v.validateCredentials(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserFormValidator) validateUserForm(form models.UserForm, fields ...string) error {
	if len(fields) == 0 {
		fields = allUserFormFields
	}

	// required check runs over every in-scope field before any format check
	for _, field := range fields {
		value, err := userFormField(form, field)
		if err != nil {
			return err
		}
		if value == "" {
			return ErrFieldsRequired
		}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if !isValidEmail(form.Email) {
				return ErrInvalidEmail
			}
		case FieldAge:
			age, err := strconv.Atoi(form.Age)
			if err != nil || age < MinAge || age > MaxAge {
				return ErrAgeOutOfRange
			}
		case FieldPassword:
			if len(form.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		}
	}

	return nil
}

func (v *UserFormValidator) validateCredentials(creds models.Credentials) error {
	if creds.Email == "" || creds.Password == "" {
		return ErrCredentialsRequired
	}

	return nil
}

func userFormField(form models.UserForm, field string) (string, error) {
	switch field {
	case FieldName:
		return form.Name, nil
	case FieldEmail:
		return form.Email, nil
	case FieldAge:
		return form.Age, nil
	case FieldPassword:
		return form.Password, nil
	default:
		return "", ErrUnknownField
	}
}

// isValidEmail accepts a bare RFC 5322 addr-spec with a dotted domain.
// net/mail alone would admit display names ("Ann <ann@x>") and dotless
// domains, both of which the original address filter rejects.
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	at := strings.LastIndex(email, "@")
	return strings.Contains(email[at+1:], ".")
}

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-user-admin/models"
	"github.com/stretchr/testify/assert"
)

func validForm() models.UserForm {
	return models.UserForm{
		Name:     "Ann",
		Email:    "ann@x.com",
		Age:      "30",
		Password: "secret1",
	}
}

func TestValidate_ValidForm(t *testing.T) {
	v := NewUserFormValidator()
	assert.NoError(t, v.Validate(context.Background(), validForm()))
}

func TestValidate_PointerFormAccepted(t *testing.T) {
	v := NewUserFormValidator()
	form := validForm()
	assert.NoError(t, v.Validate(context.Background(), &form))
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewUserFormValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

// TestValidate_RequiredBeforeFormat pins the short-circuit order: a form with
// an empty field AND a bad e-mail reports the required-fields error.
func TestValidate_RequiredBeforeFormat(t *testing.T) {
	v := NewUserFormValidator()
	form := validForm()
	form.Name = ""
	form.Email = "not-an-email"

	assert.ErrorIs(t, v.Validate(context.Background(), form), ErrFieldsRequired)
}

func TestValidate_EmptyFields(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*models.UserForm)
	}{
		{"empty name", func(f *models.UserForm) { f.Name = "" }},
		{"empty email", func(f *models.UserForm) { f.Email = "" }},
		{"empty age", func(f *models.UserForm) { f.Age = "" }},
		{"empty password", func(f *models.UserForm) { f.Password = "" }},
	}

	v := NewUserFormValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mut(&form)
			assert.ErrorIs(t, v.Validate(context.Background(), form), ErrFieldsRequired)
		})
	}
}

func TestValidate_EmailFormat(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"ann@x.com", true},
		{"a.b+tag@sub.example.org", true},
		{"not-an-email", false},
		{"missing-at.com", false},
		{"ann@nodot", false},
		{"Ann <ann@x.com>", false},
		{"ann@", false},
	}

	v := NewUserFormValidator()
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			form := validForm()
			form.Email = tt.email
			err := v.Validate(context.Background(), form)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidEmail)
			}
		})
	}
}

func TestValidate_AgeRange(t *testing.T) {
	tests := []struct {
		age   string
		valid bool
	}{
		{"1", true},
		{"150", true},
		{"30", true},
		{"0", false},
		{"151", false},
		{"-5", false},
		{"abc", false},
		{"30.5", false},
	}

	v := NewUserFormValidator()
	for _, tt := range tests {
		t.Run(tt.age, func(t *testing.T) {
			form := validForm()
			form.Age = tt.age
			err := v.Validate(context.Background(), form)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrAgeOutOfRange)
			}
		})
	}
}

func TestValidate_PasswordLength(t *testing.T) {
	v := NewUserFormValidator()

	form := validForm()
	form.Password = "12345"
	assert.ErrorIs(t, v.Validate(context.Background(), form), ErrPasswordTooShort)

	form.Password = "123456"
	assert.NoError(t, v.Validate(context.Background(), form))
}

// TestValidate_FieldScoping verifies that the update form, which carries no
// password, passes validation when the password field is out of scope.
func TestValidate_FieldScoping(t *testing.T) {
	v := NewUserFormValidator()
	form := validForm()
	form.Password = ""

	err := v.Validate(context.Background(), form, FieldName, FieldEmail, FieldAge)
	assert.NoError(t, err)
}

func TestValidate_UnknownFieldName(t *testing.T) {
	v := NewUserFormValidator()
	err := v.Validate(context.Background(), validForm(), "surname")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidate_Credentials(t *testing.T) {
	v := NewUserFormValidator()

	assert.NoError(t, v.Validate(context.Background(), models.Credentials{Email: "ann@x.com", Password: "secret1"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.Credentials{Password: "secret1"}), ErrCredentialsRequired)
	assert.ErrorIs(t, v.Validate(context.Background(), models.Credentials{Email: "ann@x.com"}), ErrCredentialsRequired)
}

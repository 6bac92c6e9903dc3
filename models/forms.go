package models

import "strings"

// UserForm carries the raw, whitespace-trimmed field values of a submitted
// create or update form. Values are kept as strings until validation so that
// a rejected form can be re-rendered exactly as the user typed it.
type UserForm struct {
	ID       int64
	Name     string
	Email    string
	Age      string
	Password string
}

// NewUserForm trims every submitted field. Trimming happens once, at the
// transport boundary, so validators and services see canonical values.
func NewUserForm(name, email, age, password string) UserForm {
	return UserForm{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Age:      strings.TrimSpace(age),
		Password: strings.TrimSpace(password),
	}
}

// Credentials carries a submitted login form.
type Credentials struct {
	Email    string
	Password string
}

package service

import "errors"

var (
	// ErrInvalidCredentials is returned by AuthService.Login for both an
	// unknown e-mail and a wrong password, so that responses cannot reveal
	// which part of the submission was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

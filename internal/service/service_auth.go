package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/internal/store"
	"github.com/MKhiriev/go-user-admin/internal/validators"
	"github.com/MKhiriev/go-user-admin/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against bcrypt hashes stored by UserService.
type authService struct {
	userRepository store.UserRepository

	validator validators.Validator

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

// Login authenticates a user by e-mail and password.
//
// It looks up the account by e-mail and compares the submitted password
// against the stored bcrypt hash. An unknown e-mail and a wrong password both
// yield ErrInvalidCredentials, so responses cannot reveal which part of the
// submission was wrong.
//
// Returns the authenticated user record or:
//   - validators.ErrCredentialsRequired if either field is empty.
//   - ErrInvalidCredentials if the e-mail is unknown or the password does
//     not match.
//   - A wrapped storage error if the lookup fails for any other reason.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Error().Err(err).Msg("login submission rejected")
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Error().Str("email", creds.Email).Msg("login with unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", creds.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(creds.Password))
	if err != nil {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

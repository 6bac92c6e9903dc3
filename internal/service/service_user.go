package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/internal/store"
	"github.com/MKhiriev/go-user-admin/internal/validators"
	"github.com/MKhiriev/go-user-admin/models"
	"golang.org/x/crypto/bcrypt"
)

// userService is the concrete implementation of UserService.
// It validates submitted forms, hashes passwords with bcrypt, and delegates
// persistence to a UserRepository.
type userService struct {
	userRepository store.UserRepository

	// validator checks submitted forms before any row is written.
	validator validators.Validator

	logger *logger.Logger
}

// NewUserService constructs a new UserService wired to the given
// UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

// CreateUser validates the create form, hashes the password, and inserts a
// new user row.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - A validators sentinel (ErrFieldsRequired, ErrInvalidEmail,
//     ErrAgeOutOfRange, ErrPasswordTooShort) if the form is rejected.
//   - A wrapped storage error if the insert fails.
func (u *userService) CreateUser(ctx context.Context, form models.UserForm) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, form); err != nil {
		log.Error().Err(err).Str("email", form.Email).Msg("create form rejected")
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := formToUser(form)
	user.PasswordHash = string(hash)

	createdUser, err := u.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", form.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// GetUser fetches one user by id.
//
// Returns the user or a wrapped storage error (store.ErrUserNotFound when no
// row matches).
func (u *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := u.userRepository.GetUser(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// ListUsers returns every user ordered by id. An empty table yields an empty
// slice, not an error.
func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing ended with error")
		return nil, fmt.Errorf("user listing ended with error: %w", err)
	}

	return users, nil
}

// UpdateUser validates the update form (the password field is out of scope:
// the edit page never carries one) and rewrites name, email and age of the
// row matching form.ID. The stored password hash is left untouched.
//
// Returns the updated user or:
//   - A validators sentinel if the form is rejected.
//   - store.ErrUserNotFound (wrapped) if no row matches form.ID.
func (u *userService) UpdateUser(ctx context.Context, form models.UserForm) (models.User, error) {
	log := logger.FromContext(ctx)

	err := u.validator.Validate(ctx, form,
		validators.FieldName, validators.FieldEmail, validators.FieldAge)
	if err != nil {
		log.Error().Err(err).Int64("id", form.ID).Msg("update form rejected")
		return models.User{}, err
	}

	user := formToUser(form)

	if err := u.userRepository.UpdateUser(ctx, user); err != nil {
		log.Err(err).Int64("id", form.ID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return user, nil
}

// DeleteUser removes the row matching id and returns the number of affected
// rows. Deleting an absent id is not an error: it reports zero.
func (u *userService) DeleteUser(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContext(ctx)

	affected, err := u.userRepository.DeleteUser(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user deletion ended with error")
		return 0, fmt.Errorf("user deletion ended with error: %w", err)
	}

	return affected, nil
}

// formToUser converts a validated form into the storage model. The age field
// has already passed the numeric range check, so the conversion cannot fail.
func formToUser(form models.UserForm) models.User {
	age, _ := strconv.Atoi(form.Age)

	return models.User{
		UserID: form.ID,
		Name:   form.Name,
		Email:  form.Email,
		Age:    age,
	}
}

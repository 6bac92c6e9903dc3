package service

import (
	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/internal/store"
	"github.com/MKhiriev/go-user-admin/internal/validators"
)

// Services aggregates every application service the handlers depend on.
type Services struct {
	UserService UserService
	AuthService AuthService
}

// NewServices wires the services to the given storages and a shared form
// validator.
func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	validator := validators.NewUserFormValidator()

	return &Services{
		UserService: NewUserService(storages.UserRepository, validator, logger),
		AuthService: NewAuthService(storages.UserRepository, validator, logger),
	}
}

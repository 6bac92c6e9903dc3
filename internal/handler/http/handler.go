package http

import (
	"time"

	"github.com/MKhiriev/go-user-admin/internal/config"
	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/internal/service"
	"github.com/MKhiriev/go-user-admin/internal/session"
)

type Handler struct {
	services *service.Services

	sessions   session.Store
	sessionTTL time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions session.Store, cfg config.Sessions, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		sessions:   sessions,
		sessionTTL: cfg.TTL,
		logger:     logger,
	}
}

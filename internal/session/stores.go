package session

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-admin/internal/config"
	"github.com/MKhiriev/go-user-admin/internal/logger"
)

// NewStore constructs the session [Store] named by the configuration.
func NewStore(ctx context.Context, cfg config.Sessions, log *logger.Logger) (Store, error) {
	switch cfg.Backend {
	case config.SessionBackendMemory:
		log.Debug().Msg("creating in-memory session store")
		return NewMemoryStore(), nil
	case config.SessionBackendRedis:
		log.Debug().Str("address", cfg.RedisAddress).Msg("creating redis session store")
		return NewRedisStore(ctx, cfg.RedisAddress)
	default:
		return nil, fmt.Errorf("unknown session backend: %q", cfg.Backend)
	}
}

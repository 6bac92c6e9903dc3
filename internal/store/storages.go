package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-admin/internal/config"
	"github.com/MKhiriev/go-user-admin/internal/logger"
)

// Storages bundles the database handle and every repository built on it.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
}

// NewStorages opens the database selected by the DSN scheme, applies pending
// migrations, and wires up the repositories. A "postgres://" (or
// "postgresql://") DSN selects the pgx backend; anything else is treated as a
// SQLite file path.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		db, err = NewConnectPostgres(ctx, cfg, log)
	} else {
		db, err = NewConnectSQLite(cfg, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
	}, nil
}

// Close releases the underlying database handle.
func (s *Storages) Close() error {
	return s.DB.Close()
}

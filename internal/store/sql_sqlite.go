package store

import (
	"fmt"

	"github.com/MKhiriev/go-user-admin/internal/config"
	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/migrations"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// NewConnectSQLite opens a SQLite database at the file path in cfg.DSN
// (":memory:" supported). Used for local development and tests.
func NewConnectSQLite(cfg config.Storage, log *logger.Logger) (*DB, error) {
	conn, err := sqlx.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// sqlite serialises writers itself; a single connection avoids
	// SQLITE_BUSY under concurrent requests
	conn.SetMaxOpenConns(1)

	if err = conn.Ping(); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	db := &DB{
		DB:              conn,
		dialect:         migrations.DialectSQLite,
		errorClassifier: genericErrorClassifier{},
		logger:          log,
	}

	return db, nil
}

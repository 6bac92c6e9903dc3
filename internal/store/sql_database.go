package store

import (
	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/migrations"
	"github.com/jmoiron/sqlx"
)

// DB wraps the sqlx handle together with the dialect it was opened for and an
// error classifier for that dialect. It is the single database dependency
// every repository receives.
type DB struct {
	*sqlx.DB
	dialect         string
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// Migrate applies all pending schema migrations for the handle's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB.DB, db.dialect)
}

// Dialect reports which driver the handle was opened with
// (migrations.DialectPostgres or migrations.DialectSQLite).
func (db *DB) Dialect() string {
	return db.dialect
}

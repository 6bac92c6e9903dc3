package store

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier implements [ErrorClassifier] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver and maps it
// to an [ErrorKind] value.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassifier]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is not
// a PostgreSQL driver error, the absent-row case is still recognised via
// [sql.ErrNoRows]; everything else is [KindInternal].
func (c *PostgresErrorClassifier) Classify(err error) ErrorKind {
	if err == nil {
		return KindInternal
	}

	if errors.Is(err, sql.ErrNoRows) {
		return KindNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return KindInternal
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorKind] based on the
// PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// KindUnavailable codes:
//   - Class 08 — connection exceptions (08000, 08003, 08006)
//   - Class 57 — cannot connect now (57P03)
//
// KindConstraintViolation codes:
//   - Class 23 — integrity constraint violations
//
// KindNotFound codes:
//   - P0002 — no_data_found
//
// Any code not listed above is classified as [KindInternal].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorKind {
	switch pgErr.Code {
	// Class 08 — connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return KindUnavailable

	// Class 57 — operator intervention
	case pgerrcode.CannotConnectNow: // 57P03
		return KindUnavailable
	}

	switch pgErr.Code {
	// Class 23 — integrity constraint violations
	case pgerrcode.IntegrityConstraintViolation,
		pgerrcode.RestrictViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.ForeignKeyViolation,
		pgerrcode.UniqueViolation,
		pgerrcode.CheckViolation:
		return KindConstraintViolation
	}

	if pgErr.Code == pgerrcode.NoDataFound {
		return KindNotFound
	}

	// Default: treat unrecognised codes as internal.
	return KindInternal
}

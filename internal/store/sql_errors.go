package store

import (
	"database/sql"
	"errors"
)

// ErrorKind is the closed set of failure categories a database operation can
// be reduced to. Handlers choose user-facing messages from this set while the
// underlying driver error stays in the logs.
type ErrorKind int

const (
	// KindInternal is the default category for unrecognised driver errors.
	KindInternal ErrorKind = iota

	// KindNotFound indicates that a query expected to match a row matched
	// none.
	KindNotFound

	// KindConstraintViolation indicates that the database rejected a write
	// for violating an integrity constraint.
	KindConstraintViolation

	// KindUnavailable indicates a connection-level failure: the database
	// could not be reached or dropped the connection mid-operation.
	KindUnavailable
)

// ErrorClassifier reduces a driver-level error to an [ErrorKind].
// Each supported dialect provides its own implementation.
type ErrorClassifier interface {
	Classify(err error) ErrorKind
}

// genericErrorClassifier is the fallback classifier used for drivers without
// structured error codes (SQLite). It only recognises the absent-row case.
type genericErrorClassifier struct{}

func (genericErrorClassifier) Classify(err error) ErrorKind {
	if err == nil {
		return KindInternal
	}

	if errors.Is(err, sql.ErrNoRows) {
		return KindNotFound
	}

	return KindInternal
}

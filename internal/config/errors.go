package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSessionConfigs indicates invalid session store settings
	// (for example, an unknown backend, a redis backend without an address,
	// or a non-positive TTL).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
)

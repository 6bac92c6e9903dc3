// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Sessions.Backend {
	case SessionBackendMemory:
	case SessionBackendRedis:
		if cfg.Sessions.RedisAddress == "" {
			return ErrInvalidSessionConfigs
		}
	default:
		return ErrInvalidSessionConfigs
	}

	if cfg.Sessions.TTL <= 0 {
		return ErrInvalidSessionConfigs
	}

	return nil
}

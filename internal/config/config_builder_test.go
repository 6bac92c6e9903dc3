package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_DefaultsFillUnsetFields verifies that withDefaults supplies the
// fallback values when no other source sets them.
func TestBuild_DefaultsFillUnsetFields(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "users.db", cfg.Storage.DSN)
	assert.Equal(t, SessionBackendMemory, cfg.Sessions.Backend)
	assert.Equal(t, 24*time.Hour, cfg.Sessions.TTL)
}

// TestBuild_EarlierSourceWins verifies mergo semantics: a value set by an
// earlier source is not overridden by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{DSN: "first.db"}})
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{DSN: "second.db"}})
	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "first.db", cfg.Storage.DSN)
}

// TestWithJSON_MergesFileValues verifies that a JSON config file referenced
// by an earlier source is loaded and merged.
func TestWithJSON_MergesFileValues(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server":   map[string]any{"http_address": "0.0.0.0:9090", "request_timeout": "45s"},
		"sessions": map[string]any{"backend": "redis", "redis_address": "localhost:6379", "ttl": "1h"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	cfg, err := b.withJSON().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, SessionBackendRedis, cfg.Sessions.Backend)
	assert.Equal(t, "localhost:6379", cfg.Sessions.RedisAddress)
	assert.Equal(t, time.Hour, cfg.Sessions.TTL)
}

// TestWithJSON_MissingFileSetsError verifies that referencing a nonexistent
// JSON file surfaces as a build error.
func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	_, err := b.withJSON().build()
	require.Error(t, err)
}

// TestValidate_UnknownSessionBackend verifies that an unrecognised session
// backend is rejected.
func TestValidate_UnknownSessionBackend(t *testing.T) {
	cfg := &StructuredConfig{
		Storage:  Storage{DSN: "users.db"},
		Sessions: Sessions{Backend: "memcached", TTL: time.Hour},
	}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidSessionConfigs)
}

// TestValidate_RedisBackendRequiresAddress verifies that selecting the redis
// backend without an address is rejected.
func TestValidate_RedisBackendRequiresAddress(t *testing.T) {
	cfg := &StructuredConfig{
		Storage:  Storage{DSN: "users.db"},
		Sessions: Sessions{Backend: SessionBackendRedis, TTL: time.Hour},
	}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidSessionConfigs)
}

// TestValidate_EmptyDSN verifies that an empty DSN is rejected.
func TestValidate_EmptyDSN(t *testing.T) {
	cfg := &StructuredConfig{
		Sessions: Sessions{Backend: SessionBackendMemory, TTL: time.Hour},
	}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

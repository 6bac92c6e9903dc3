package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-admin/models"
	"github.com/go-redis/redis/v8"
)

// keyPrefix namespaces session keys so the store can share a redis database
// with other consumers.
const keyPrefix = "session:"

// RedisStore keeps sessions in redis so that logins survive server restarts
// and can be shared between instances. Values are JSON-encoded; redis itself
// enforces the TTL.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the redis server at address and verifies the
// connection with a ping.
func NewRedisStore(ctx context.Context, address string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: address})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (models.Session, error) {
	payload, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Session{}, ErrSessionNotFound
		}
		return models.Session{}, fmt.Errorf("error reading session: %w", err)
	}

	var session models.Session
	if err = json.Unmarshal(payload, &session); err != nil {
		return models.Session{}, fmt.Errorf("error decoding session: %w", err)
	}

	return session, nil
}

func (s *RedisStore) Set(ctx context.Context, token string, session models.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	if err = s.client.Set(ctx, keyPrefix+token, payload, ttl).Err(); err != nil {
		return fmt.Errorf("error storing session: %w", err)
	}

	return nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("error destroying session: %w", err)
	}

	return nil
}

package session

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-user-admin/models"
)

type memoryEntry struct {
	session   models.Session
	expiresAt time.Time
}

// MemoryStore is a mutex-guarded in-process session store. Expiry is lazy: a
// stale entry is evicted the next time its token is looked up.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

// NewMemoryStore constructs an empty in-process [Store].
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Get(_ context.Context, token string) (models.Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return models.Session{}, ErrSessionNotFound
	}

	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return models.Session{}, ErrSessionNotFound
	}

	return entry.session, nil
}

func (s *MemoryStore) Set(_ context.Context, token string, session models.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = memoryEntry{
		session:   session,
		expiresAt: time.Now().Add(ttl),
	}

	return nil
}

// Sweep removes every expired entry and reports how many were evicted.
// Lazy eviction in Get only covers tokens that are looked up again; Sweep
// reclaims the rest.
func (s *MemoryStore) Sweep() int {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for token, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, token)
			evicted++
		}
	}

	return evicted
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

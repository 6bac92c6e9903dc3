package workers

import (
	"time"

	"github.com/MKhiriev/go-user-admin/internal/logger"
)

// ExpiredSessionStore is the part of a session backend the sweeper needs:
// dropping expired entries and reporting how many were removed. Backends with
// native expiry (redis) do not need a sweeper.
type ExpiredSessionStore interface {
	Sweep() int
}

// SessionSweeper periodically evicts expired sessions from an in-process
// store, reclaiming entries whose tokens are never looked up again.
type SessionSweeper struct {
	store    ExpiredSessionStore
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionSweeper(store ExpiredSessionStore, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		store:    store,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the sweep loop in a background goroutine and returns. The loop
// runs for the lifetime of the process.
func (s *SessionSweeper) Run() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for range ticker.C {
			if evicted := s.store.Sweep(); evicted > 0 {
				s.logger.Debug().Int("evicted", evicted).Msg("expired sessions removed")
			}
		}
	}()
}

package store

import (
	"context"
	"log/slog"
	"time"
)

// Janitor periodically evicts idle sessions. Without it the in-memory table
// grows without bound, one entry per abandoned browser tab.
type Janitor struct {
	store    *Store
	ttl      time.Duration
	interval time.Duration
	logger   *slog.Logger
}

// NewJanitor constructs a Janitor. Call Start in a goroutine from main.
func NewJanitor(st *Store, ttl, interval time.Duration, logger *slog.Logger) *Janitor {
	return &Janitor{
		store:    st,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
	}
}

// Start sweeps on the configured interval until ctx is cancelled. The first
// sweep runs immediately so a restart clears stale state without waiting a
// full interval.
func (j *Janitor) Start(ctx context.Context) {
	j.logger.Info("janitor: starting", "ttl", j.ttl, "interval", j.interval)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.sweep()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info("janitor: stopped")
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *Janitor) sweep() {
	removed := j.store.DeleteExpired(time.Now().Add(-j.ttl))
	if removed > 0 {
		j.logger.Info("janitor: evicted idle sessions", "count", removed, "remaining", j.store.Len())
	}
}

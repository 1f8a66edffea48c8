package scheduler

import (
	"context"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/logging"
)

// StaleGameDeleter removes unfinished games last touched before a cutoff
type StaleGameDeleter interface {
	DeleteStale(ctx context.Context, before time.Time) (int, error)
}

// NewStaleGameCleanup schedules removal of games abandoned for longer than maxAge
func NewStaleGameCleanup(repo StaleGameDeleter, maxAge, interval time.Duration) *Scheduler {
	s := NewScheduler()
	logger := logging.Default.With("game-cleanup")
	s.AddTask("stale_game_cleanup", interval, func(ctx context.Context) error {
		removed, err := repo.DeleteStale(ctx, time.Now().UTC().Add(-maxAge))
		if err != nil {
			return err
		}
		if removed > 0 {
			logger.Info("Removed %d abandoned games", removed)
		}
		return nil
	})
	return s
}

package scheduler

import (
	"context"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/logging"
)

// IndexPruner drops indexed games older than the configured retention
type IndexPruner interface {
	Prune(ctx context.Context) (int, error)
}

// ElasticsearchMaintenanceScheduler manages scheduled maintenance tasks for Elasticsearch
type ElasticsearchMaintenanceScheduler struct {
	scheduler *Scheduler
	repo      IndexPruner
	interval  time.Duration
	logger    *logging.Logger
}

// NewElasticsearchMaintenanceScheduler creates a scheduler that prunes the
// game index. A non-positive interval defaults to daily.
func NewElasticsearchMaintenanceScheduler(repo IndexPruner, interval time.Duration) *ElasticsearchMaintenanceScheduler {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &ElasticsearchMaintenanceScheduler{
		scheduler: NewScheduler(),
		repo:      repo,
		interval:  interval,
		logger:    logging.Default.With("es-maintenance"),
	}
}

// Start initializes and starts the maintenance scheduler
func (s *ElasticsearchMaintenanceScheduler) Start(ctx context.Context) {
	s.scheduler.AddTask("index_pruning", s.interval, s.pruneOldGames)
	s.scheduler.Start(ctx)
}

// Stop stops the maintenance scheduler
func (s *ElasticsearchMaintenanceScheduler) Stop() {
	s.scheduler.Stop()
}

func (s *ElasticsearchMaintenanceScheduler) pruneOldGames(ctx context.Context) error {
	deleted, err := s.repo.Prune(ctx)
	if err != nil {
		return err
	}
	if deleted > 0 {
		s.logger.Info("Pruned %d games from the search index", deleted)
	}
	return nil
}

package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/logging"
	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/repositories/game"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/storage"
)

// Storage keeps games in memory and writes the whole set to a JSON file on
// every change. It implements game.Repository.
type Storage struct {
	path    string
	mu      sync.RWMutex
	games   map[string]*entities.GameRecord
	options *storage.Options
	logger  *logging.Logger
	stop    chan struct{}
	done    chan struct{}
}

var _ game.Repository = (*Storage)(nil)

// New creates a new file storage instance
func New(options *storage.Options) (*Storage, error) {
	if options == nil {
		options = storage.NewOptions()
	}

	s := &Storage{
		path:    options.Path,
		games:   make(map[string]*entities.GameRecord),
		options: options,
		logger:  logging.Default.With("file-storage"),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	if err := s.load(); err != nil {
		return nil, fmt.Errorf("failed to load games: %w", err)
	}

	if options.AutoCleanup && options.MaxGameAge > 0 {
		go s.cleanupRoutine()
	} else {
		close(s.done)
	}

	return s, nil
}

// Save stores a copy of the game and flushes the file
func (s *Storage) Save(ctx context.Context, g *entities.GameRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.games[g.ID]
	s.games[g.ID] = g.Clone()
	if err := s.save(); err != nil {
		if existed {
			s.games[g.ID] = previous
		} else {
			delete(s.games, g.ID)
		}
		return err
	}
	return nil
}

// FindByID returns a copy of the stored game
func (s *Storage) FindByID(ctx context.Context, id string) (*entities.GameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	if !ok {
		return nil, game.NotFound(id)
	}
	return g.Clone(), nil
}

// Delete removes a game
func (s *Storage) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, ok := s.games[id]
	if !ok {
		return game.NotFound(id)
	}
	delete(s.games, id)
	if err := s.save(); err != nil {
		s.games[id] = previous
		return err
	}
	return nil
}

// ListByPlayer returns a player's finished games, newest first
func (s *Storage) ListByPlayer(ctx context.Context, playerID string, limit int) ([]*entities.GameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]*entities.GameRecord, 0)
	for _, g := range s.games {
		if g.PlayerID == playerID && g.IsFinished() {
			games = append(games, g.Clone())
		}
	}
	game.SortNewestFirst(games)

	if limit > 0 && len(games) > limit {
		games = games[:limit]
	}
	return games, nil
}

// DeleteStale removes unfinished games last updated before the cutoff
func (s *Storage) DeleteStale(ctx context.Context, before time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, g := range s.games {
		if !g.IsFinished() && g.UpdatedAt.Before(before) {
			delete(s.games, id)
			removed++
		}
	}
	if removed == 0 {
		return 0, nil
	}
	if err := s.save(); err != nil {
		return 0, err
	}
	return removed, nil
}

// Close stops the cleanup routine
func (s *Storage) Close() error {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
	<-s.done
	return nil
}

// Helper functions

func (s *Storage) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	return json.Unmarshal(data, &s.games)
}

// save writes to a temporary file first so a crash never leaves a torn file
func (s *Storage) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return types.WrapError(types.ErrDatabaseError, "failed to create directory", err)
	}

	data, err := json.MarshalIndent(s.games, "", "  ")
	if err != nil {
		return types.WrapError(types.ErrInternalError, "failed to marshal games", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return types.WrapError(types.ErrDatabaseError, "failed to write file", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return types.WrapError(types.ErrDatabaseError, "failed to replace file", err)
	}
	return nil
}

func (s *Storage) cleanupRoutine() {
	defer close(s.done)

	ticker := time.NewTicker(s.options.MaxGameAge / 4)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			removed, err := s.DeleteStale(context.Background(), time.Now().Add(-s.options.MaxGameAge))
			if err != nil {
				s.logger.Error("Error cleaning up old games: %v", err)
				continue
			}
			if removed > 0 {
				s.logger.Info("Removed %d stale games", removed)
			}
		}
	}
}

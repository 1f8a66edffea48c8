package game

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
)

// MemoryRepository implements Repository interface with in-memory storage
type MemoryRepository struct {
	mu    sync.RWMutex
	games map[string]*entities.GameRecord
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		games: make(map[string]*entities.GameRecord),
	}
}

// Save stores a copy of the game
func (r *MemoryRepository) Save(ctx context.Context, game *entities.GameRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.games[game.ID] = game.Clone()
	return nil
}

// FindByID returns a copy of the stored game
func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*entities.GameRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	game, exists := r.games[id]
	if !exists {
		return nil, NotFound(id)
	}
	return game.Clone(), nil
}

// Delete removes a game
func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.games[id]; !exists {
		return NotFound(id)
	}
	delete(r.games, id)
	return nil
}

// ListByPlayer returns a player's finished games, newest first
func (r *MemoryRepository) ListByPlayer(ctx context.Context, playerID string, limit int) ([]*entities.GameRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*entities.GameRecord, 0)
	for _, game := range r.games {
		if game.PlayerID == playerID && game.IsFinished() {
			results = append(results, game.Clone())
		}
	}
	SortNewestFirst(results)

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// DeleteStale removes unfinished games not touched since before
func (r *MemoryRepository) DeleteStale(ctx context.Context, before time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, game := range r.games {
		if !game.IsFinished() && game.UpdatedAt.Before(before) {
			delete(r.games, id)
			removed++
		}
	}
	return removed, nil
}

// Close is a no-op for memory repository since there are no resources to close
func (r *MemoryRepository) Close() error {
	return nil
}

// SortNewestFirst orders records by finish time, falling back to creation
// time, most recent first
func SortNewestFirst(records []*entities.GameRecord) {
	playedAt := func(g *entities.GameRecord) time.Time {
		if g.FinishedAt != nil {
			return *g.FinishedAt
		}
		return g.CreatedAt
	}
	sort.SliceStable(records, func(i, j int) bool {
		return playedAt(records[i]).After(playedAt(records[j]))
	})
}

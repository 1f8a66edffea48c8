package player

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
)

// MemoryRepository implements Repository with in-memory storage
type MemoryRepository struct {
	mu      sync.RWMutex
	players map[string]*entities.Player
	byName  map[string]string
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		players: make(map[string]*entities.Player),
		byName:  make(map[string]string),
	}
}

// Create stores a copy of the player
func (r *MemoryRepository) Create(ctx context.Context, player *entities.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[player.Name]; taken {
		return Exists(player.Name)
	}
	if _, taken := r.players[player.ID]; taken {
		return Exists(player.ID)
	}

	p := *player
	r.players[p.ID] = &p
	r.byName[p.Name] = p.ID
	return nil
}

// FindByID returns a copy of the player
func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*entities.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[id]
	if !ok {
		return nil, NotFound(id)
	}
	c := *p
	return &c, nil
}

// FindByName returns a copy of the player with this name
func (r *MemoryRepository) FindByName(ctx context.Context, name string) (*entities.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[name]
	if !ok {
		return nil, NotFound(name)
	}
	c := *r.players[id]
	return &c, nil
}

// UpdateStats replaces the player's counters
func (r *MemoryRepository) UpdateStats(ctx context.Context, id string, record entities.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[id]
	if !ok {
		return NotFound(id)
	}
	p.Record = record
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// Delete removes a player
func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[id]
	if !ok {
		return NotFound(id)
	}
	delete(r.byName, p.Name)
	delete(r.players, id)
	return nil
}

// List returns every player ordered by wins desc, then name
func (r *MemoryRepository) List(ctx context.Context) ([]*entities.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := make([]*entities.Player, 0, len(r.players))
	for _, p := range r.players {
		c := *p
		players = append(players, &c)
	}
	sort.Slice(players, func(i, j int) bool {
		if players[i].Record.Wins != players[j].Record.Wins {
			return players[i].Record.Wins > players[j].Record.Wins
		}
		return players[i].Name < players[j].Name
	})
	return players, nil
}

// Close is a no-op for memory repository since there are no resources to close
func (r *MemoryRepository) Close() error {
	return nil
}

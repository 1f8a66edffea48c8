package player

import (
	"context"
	"fmt"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_player

// Repository defines storage operations for player profiles
type Repository interface {
	// Create stores a new player. Names are unique; a taken name or id
	// returns PLAYER_EXISTS.
	Create(ctx context.Context, player *entities.Player) error

	// FindByID returns the player or PLAYER_NOT_FOUND
	FindByID(ctx context.Context, id string) (*entities.Player, error)

	// FindByName returns the player with exactly this name or PLAYER_NOT_FOUND
	FindByName(ctx context.Context, name string) (*entities.Player, error)

	// UpdateStats replaces the player's counters
	UpdateStats(ctx context.Context, id string, record entities.Record) error

	// Delete removes the player or returns PLAYER_NOT_FOUND
	Delete(ctx context.Context, id string) error

	// List returns every player ordered by wins desc, then name
	List(ctx context.Context) ([]*entities.Player, error)

	// Close closes any resources used by the repository
	Close() error
}

// NotFound builds the error returned for a missing player
func NotFound(key string) error {
	return types.NewGameError(types.ErrPlayerNotFound, fmt.Sprintf("player not found: %s", key))
}

// Exists builds the error returned when a name is already taken
func Exists(name string) error {
	return types.NewGameError(types.ErrPlayerExists, fmt.Sprintf("player already exists: %s", name))
}

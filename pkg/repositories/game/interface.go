package game

import (
	"context"
	"fmt"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_game

// Repository defines storage operations for games
type Repository interface {
	// Save inserts or replaces a game record
	Save(ctx context.Context, game *entities.GameRecord) error

	// FindByID returns the game or a GAME_NOT_FOUND error
	FindByID(ctx context.Context, id string) (*entities.GameRecord, error)

	// Delete removes the game or returns GAME_NOT_FOUND
	Delete(ctx context.Context, id string) error

	// ListByPlayer returns a player's finished games, newest first. A limit of
	// zero or less returns all of them.
	ListByPlayer(ctx context.Context, playerID string, limit int) ([]*entities.GameRecord, error)

	// DeleteStale removes unfinished games last updated before the cutoff
	DeleteStale(ctx context.Context, before time.Time) (int, error)

	// Close closes any resources used by the repository
	Close() error
}

// NotFound builds the error returned for a missing game id
func NotFound(id string) error {
	return types.NewGameError(types.ErrGameNotFound, fmt.Sprintf("game not found with id: %s", id))
}

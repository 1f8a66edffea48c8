package player

import (
	"context"

	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_player_service

// PlayerService manages player profiles and their counters
type PlayerService interface {
	CreatePlayer(ctx context.Context, name string) (*entities.Player, error)
	Login(ctx context.Context, name string) (*entities.Player, bool, error)
	GetPlayer(ctx context.Context, id string) (*entities.Player, error)
	DeletePlayer(ctx context.Context, id string) error
	RecordResult(ctx context.Context, playerID string, result entities.GameResult) error
}

package game

import (
	"context"

	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_game_service

// GameService drives persisted games through their turns
type GameService interface {
	NewGame(ctx context.Context, playerID string) (*entities.GameRecord, error)
	GetGame(ctx context.Context, id string) (*entities.GameRecord, error)
	Hit(ctx context.Context, id string) (*entities.GameRecord, error)
	Stand(ctx context.Context, id string) (*entities.GameRecord, error)
	StandAndPlay(ctx context.Context, id string) (*entities.GameRecord, error)
	CrupierHit(ctx context.Context, id string) (*entities.GameRecord, error)
	DeleteGame(ctx context.Context, id string) error
}

// ResultRecorder is told about every game that finishes
type ResultRecorder interface {
	RecordResult(ctx context.Context, playerID string, result entities.GameResult) error
}

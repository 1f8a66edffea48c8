package statistics

import (
	"context"

	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_statistics_service

// StatisticsService answers questions about finished games
type StatisticsService interface {
	GetPlayerStats(ctx context.Context, playerID string) (*entities.PlayerStatistics, error)
	GetPlayerHistory(ctx context.Context, playerID string, limit int) ([]entities.GameHistoryEntry, error)
	GetRanking(ctx context.Context, page, perPage int) (*Leaderboard, error)
}

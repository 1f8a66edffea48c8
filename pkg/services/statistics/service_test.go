package statistics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/repositories/game"
	mock_game "github.com/EstherBlacksmith/blackjack.V.02/pkg/repositories/game/mock"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/repositories/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StatisticsTestSuite struct {
	suite.Suite
	games   *game.MemoryRepository
	players *player.MemoryRepository
	service *Service
	ctx     context.Context
	now     time.Time
}

func TestStatisticsSuite(t *testing.T) {
	suite.Run(t, new(StatisticsTestSuite))
}

func (s *StatisticsTestSuite) SetupTest() {
	s.games = game.NewMemoryRepository()
	s.players = player.NewMemoryRepository()
	s.service = NewService(s.games, s.players)
	s.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.now }
	s.ctx = context.Background()
}

func (s *StatisticsTestSuite) addPlayer(id, name string, record entities.Record) {
	s.Require().NoError(s.players.Create(s.ctx, &entities.Player{ID: id, Name: name, CreatedAt: s.now, UpdatedAt: s.now}))
	s.Require().NoError(s.players.UpdateStats(s.ctx, id, record))
}

func (s *StatisticsTestSuite) addGame(id, playerID string, status entities.GameStatus, result entities.GameResult, finished time.Time) {
	g := &entities.GameRecord{
		ID:          id,
		PlayerID:    playerID,
		PlayerName:  "Esther",
		PlayerScore: 20,
		DealerScore: 18,
		Status:      status,
		Result:      result,
		CreatedAt:   finished.Add(-time.Minute),
		UpdatedAt:   finished,
	}
	if status == entities.StatusFinished {
		g.FinishedAt = &finished
	}
	s.Require().NoError(s.games.Save(s.ctx, g))
}

func (s *StatisticsTestSuite) TestGetPlayerStats() {
	// Setup
	s.addPlayer("p1", "Esther", entities.Record{Wins: 3, Losses: 1})
	s.addGame("g1", "p1", entities.StatusFinished, entities.ResultPlayerWins, s.now.Add(-2*time.Hour))
	s.addGame("g2", "p1", entities.StatusFinished, entities.ResultCrupierWins, s.now.Add(-time.Hour))
	s.addGame("g3", "p1", entities.StatusPlayerTurn, entities.ResultNone, s.now)

	// Execute
	stats, err := s.service.GetPlayerStats(s.ctx, "p1")

	// Assert
	s.Require().NoError(err)
	s.Equal("Esther", stats.PlayerName)
	s.Equal(4, stats.TotalGames)
	s.Equal(3, stats.Wins)
	s.InDelta(75.0, stats.WinRate, 0.001)
	s.Require().Len(stats.RecentGames, 2)
	s.Equal("g2", stats.RecentGames[0].GameID)
	s.Equal(entities.ResultCrupierWins, stats.RecentGames[0].Result)
	s.Equal("g1", stats.RecentGames[1].GameID)
}

func (s *StatisticsTestSuite) TestGetPlayerStatsUnknownPlayer() {
	_, err := s.service.GetPlayerStats(s.ctx, "ghost")

	s.True(types.IsGameError(err, types.ErrPlayerNotFound))
}

func (s *StatisticsTestSuite) TestGetPlayerHistoryLimit() {
	for i := 0; i < 5; i++ {
		s.addGame(fmt.Sprintf("g%d", i), "p1", entities.StatusFinished, entities.ResultPush, s.now.Add(time.Duration(i)*time.Minute))
	}

	history, err := s.service.GetPlayerHistory(s.ctx, "p1", 3)

	s.Require().NoError(err)
	s.Require().Len(history, 3)
	s.Equal("g4", history[0].GameID)
	s.Equal("g2", history[2].GameID)
}

func (s *StatisticsTestSuite) TestGetRanking() {
	// Setup
	s.addPlayer("p1", "Carla", entities.Record{Wins: 2, Losses: 2})
	s.addPlayer("p2", "Bruno", entities.Record{Wins: 5, Losses: 5})
	s.addPlayer("p3", "Ana", entities.Record{Wins: 2})
	s.addPlayer("p4", "Dani", entities.Record{Wins: 2, Losses: 2})
	s.addPlayer("p5", "Eva", entities.Record{})

	// Execute
	board, err := s.service.GetRanking(s.ctx, 1, 10)

	// Assert
	s.Require().NoError(err)
	s.Equal(4, board.TotalPlayers, "players without games are not ranked")
	s.Equal(1, board.TotalPages)
	s.Equal(s.now, board.LastUpdated)

	names := make([]string, 0, len(board.Players))
	for _, p := range board.Players {
		names = append(names, p.PlayerName)
	}
	s.Equal([]string{"Bruno", "Ana", "Carla", "Dani"}, names)

	s.Equal(1, board.Players[0].Rank)
	s.True(board.Players[0].IsTopPlayer)
	s.Equal(10, board.Players[0].TotalGames)
	s.InDelta(100.0, board.Players[1].WinRate, 0.001)
	s.False(board.Players[1].IsTopPlayer)
	s.Equal(4, board.Players[3].Rank)
}

func (s *StatisticsTestSuite) TestGetRankingPagination() {
	for i := 0; i < 5; i++ {
		s.addPlayer(fmt.Sprintf("p%d", i), fmt.Sprintf("Player %d", i), entities.Record{Wins: 10 - i})
	}

	testCases := []struct {
		name     string
		page     int
		perPage  int
		wantPage int
		wantLen  int
		wantRank int
	}{
		{name: "first page", page: 1, perPage: 2, wantPage: 1, wantLen: 2, wantRank: 1},
		{name: "last partial page", page: 3, perPage: 2, wantPage: 3, wantLen: 1, wantRank: 5},
		{name: "page past the end", page: 9, perPage: 2, wantPage: 3, wantLen: 1, wantRank: 5},
		{name: "defaults", page: 0, perPage: 0, wantPage: 1, wantLen: 5, wantRank: 1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			board, err := s.service.GetRanking(s.ctx, tc.page, tc.perPage)
			s.Require().NoError(err)
			s.Equal(tc.wantPage, board.CurrentPage)
			s.Require().Len(board.Players, tc.wantLen)
			s.Equal(tc.wantRank, board.Players[0].Rank)
		})
	}
}

func (s *StatisticsTestSuite) TestGetRankingEmpty() {
	board, err := s.service.GetRanking(s.ctx, 1, 10)

	s.Require().NoError(err)
	s.Empty(board.Players)
	s.Equal(0, board.TotalPages)
	s.Equal(1, board.CurrentPage)
}

func TestGetPlayerHistoryRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	games := mock_game.NewMockRepository(ctrl)
	svc := NewService(games, player.NewMemoryRepository())
	ctx := context.Background()
	dbErr := types.WrapError(types.ErrDatabaseError, "boom", errors.New("disk full"))

	games.EXPECT().ListByPlayer(ctx, "p1", 5).Return(nil, dbErr)

	_, err := svc.GetPlayerHistory(ctx, "p1", 5)
	assert.True(t, types.IsGameError(err, types.ErrDatabaseError))
}

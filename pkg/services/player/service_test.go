package player

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/logging"
	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
	playerRepo "github.com/EstherBlacksmith/blackjack.V.02/pkg/repositories/player"
	mock_player "github.com/EstherBlacksmith/blackjack.V.02/pkg/repositories/player/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceTestSuite struct {
	suite.Suite
	repo    *playerRepo.MemoryRepository
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.repo = playerRepo.NewMemoryRepository()
	s.service = NewService(s.repo).WithLogger(logging.NewLoggerWithWriter(io.Discard, logging.DEBUG))
	s.ctx = context.Background()
}

func (s *ServiceTestSuite) TestCreatePlayer() {
	// Execute
	p, err := s.service.CreatePlayer(s.ctx, "  Esther  ")

	// Assert
	s.Require().NoError(err)
	s.NotEmpty(p.ID)
	s.Equal("Esther", p.Name)
	s.Equal(entities.Record{}, p.Record)
	s.False(p.CreatedAt.IsZero())

	stored, err := s.repo.FindByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("Esther", stored.Name)
}

func (s *ServiceTestSuite) TestCreatePlayerNameLength() {
	testCases := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "too short", input: "E", valid: false},
		{name: "blank", input: "   ", valid: false},
		{name: "minimum", input: "Ed", valid: true},
		{name: "maximum", input: strings.Repeat("a", 50), valid: true},
		{name: "too long", input: strings.Repeat("a", 51), valid: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.CreatePlayer(s.ctx, tc.input)
			if tc.valid {
				s.NoError(err)
			} else {
				s.True(types.IsGameError(err, types.ErrInvalidArgument))
			}
		})
	}
}

func (s *ServiceTestSuite) TestCreateDuplicate() {
	_, err := s.service.CreatePlayer(s.ctx, "Esther")
	s.Require().NoError(err)

	_, err = s.service.CreatePlayer(s.ctx, "Esther")

	s.True(types.IsGameError(err, types.ErrPlayerExists))
}

func (s *ServiceTestSuite) TestLoginFindsOrCreates() {
	first, created, err := s.service.Login(s.ctx, "Esther")
	s.Require().NoError(err)
	s.True(created)

	second, created, err := s.service.Login(s.ctx, " Esther")
	s.Require().NoError(err)
	s.False(created)
	s.Equal(first.ID, second.ID)
}

func (s *ServiceTestSuite) TestConcurrentLoginCreatesOnce() {
	var wg sync.WaitGroup
	ids := make(chan string, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, _, err := s.service.Login(s.ctx, "Esther")
			if err == nil {
				ids <- p.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		seen[id] = true
	}
	s.Len(seen, 1)
	players, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 1)
}

func (s *ServiceTestSuite) TestRecordResult() {
	// Setup
	p, err := s.service.CreatePlayer(s.ctx, "Esther")
	s.Require().NoError(err)

	// Execute
	for _, r := range []entities.GameResult{
		entities.ResultPlayerWins, entities.ResultBlackjack, entities.ResultCrupierWins, entities.ResultPush,
	} {
		s.Require().NoError(s.service.RecordResult(s.ctx, p.ID, r))
	}

	// Assert
	got, err := s.service.GetPlayer(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(entities.Record{Wins: 2, Losses: 1, Pushes: 1}, got.Record)
}

func (s *ServiceTestSuite) TestRecordResultRejectsNoResult() {
	p, err := s.service.CreatePlayer(s.ctx, "Esther")
	s.Require().NoError(err)

	err = s.service.RecordResult(s.ctx, p.ID, entities.ResultNone)
	s.True(types.IsGameError(err, types.ErrInvalidArgument))

	err = s.service.RecordResult(s.ctx, "ghost", entities.ResultPush)
	s.True(types.IsGameError(err, types.ErrPlayerNotFound))
}

func (s *ServiceTestSuite) TestDeletePlayer() {
	p, err := s.service.CreatePlayer(s.ctx, "Esther")
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeletePlayer(s.ctx, p.ID))

	_, err = s.service.GetPlayer(s.ctx, p.ID)
	s.True(types.IsGameError(err, types.ErrPlayerNotFound))
	s.True(types.IsGameError(s.service.DeletePlayer(s.ctx, p.ID), types.ErrPlayerNotFound))
}

func (s *ServiceTestSuite) TestRepositoryErrorsPropagate() {
	ctrl := gomock.NewController(s.T())
	repo := mock_player.NewMockRepository(ctrl)
	svc := NewService(repo).WithLogger(logging.NewLoggerWithWriter(io.Discard, logging.DEBUG))
	dbErr := types.WrapError(types.ErrDatabaseError, "boom", errors.New("connection reset"))

	repo.EXPECT().FindByName(s.ctx, "Esther").Return(nil, dbErr)
	_, _, err := svc.Login(s.ctx, "Esther")
	s.True(types.IsGameError(err, types.ErrDatabaseError))

	repo.EXPECT().FindByID(s.ctx, "p1").Return(&entities.Player{ID: "p1", Name: "Esther"}, nil)
	repo.EXPECT().UpdateStats(s.ctx, "p1", entities.Record{Wins: 1}).Return(dbErr)
	err = svc.RecordResult(s.ctx, "p1", entities.ResultPlayerWins)
	s.True(types.IsGameError(err, types.ErrDatabaseError))
}

package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/storage"
	"github.com/stretchr/testify/suite"
)

type StorageTestSuite struct {
	suite.Suite
	path    string
	storage *Storage
	ctx     context.Context
}

func TestStorage(t *testing.T) {
	suite.Run(t, new(StorageTestSuite))
}

func (s *StorageTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "games.json")
	s.ctx = context.Background()
	s.storage = s.open()
}

func (s *StorageTestSuite) TearDownTest() {
	s.storage.Close()
}

func (s *StorageTestSuite) open() *Storage {
	st, err := New(&storage.Options{
		Path:        s.path,
		MaxGameAge:  time.Hour,
		AutoCleanup: false,
	})
	s.Require().NoError(err)
	return st
}

func testGame(id string, status entities.GameStatus, updated time.Time) *entities.GameRecord {
	g := &entities.GameRecord{
		ID:          id,
		PlayerID:    "player-1",
		PlayerName:  "Esther",
		PlayerCards: []entities.Card{entities.NewCard(entities.Ten, entities.Hearts), entities.NewCard(entities.Eight, entities.Clubs)},
		PlayerScore: 18,
		DealerCards: []entities.Card{entities.NewCard(entities.Six, entities.Spades), entities.NewCard(entities.Two, entities.Diamonds)},
		DealerScore: 8,
		Status:      status,
		Result:      entities.ResultNone,
		CreatedAt:   updated,
		UpdatedAt:   updated,
	}
	if status == entities.StatusFinished {
		g.Result = entities.ResultPlayerWins
		g.FinishedAt = &updated
	}
	return g
}

func (s *StorageTestSuite) TestSaveAndLoadGame() {
	// Setup
	game := testGame("test-game", entities.StatusPlayerTurn, time.Now().UTC())

	// Execute
	err := s.storage.Save(s.ctx, game)
	s.Require().NoError(err, "Failed to save game")

	// Assert
	loaded, err := s.storage.FindByID(s.ctx, game.ID)
	s.Require().NoError(err, "Failed to load game")
	s.Equal(game, loaded)
}

func (s *StorageTestSuite) TestPersistsAcrossRestarts() {
	// Setup
	finished := testGame("done", entities.StatusFinished, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
	s.Require().NoError(s.storage.Save(s.ctx, finished))
	s.Require().NoError(s.storage.Close())

	// Execute
	reopened := s.open()
	defer reopened.Close()
	loaded, err := reopened.FindByID(s.ctx, "done")

	// Assert
	s.Require().NoError(err)
	s.Equal(finished.PlayerCards, loaded.PlayerCards)
	s.Equal(entities.ResultPlayerWins, loaded.Result)
	s.True(finished.FinishedAt.Equal(*loaded.FinishedAt))

	_, err = os.Stat(s.path + ".tmp")
	s.True(os.IsNotExist(err), "temporary file left behind")
}

func (s *StorageTestSuite) TestDeleteGame() {
	game := testGame("test-game", entities.StatusPlayerTurn, time.Now())
	s.Require().NoError(s.storage.Save(s.ctx, game))

	s.Require().NoError(s.storage.Delete(s.ctx, game.ID))

	_, err := s.storage.FindByID(s.ctx, game.ID)
	s.True(types.IsGameError(err, types.ErrGameNotFound), "Game should be deleted")
	s.True(types.IsGameError(s.storage.Delete(s.ctx, game.ID), types.ErrGameNotFound))
}

func (s *StorageTestSuite) TestListByPlayer() {
	now := time.Now()
	s.Require().NoError(s.storage.Save(s.ctx, testGame("old", entities.StatusFinished, now.Add(-time.Hour))))
	s.Require().NoError(s.storage.Save(s.ctx, testGame("new", entities.StatusFinished, now)))
	s.Require().NoError(s.storage.Save(s.ctx, testGame("live", entities.StatusPlayerTurn, now)))

	games, err := s.storage.ListByPlayer(s.ctx, "player-1", 0)
	s.Require().NoError(err)
	s.Require().Len(games, 2)
	s.Equal("new", games[0].ID)
	s.Equal("old", games[1].ID)

	games, err = s.storage.ListByPlayer(s.ctx, "player-1", 1)
	s.Require().NoError(err)
	s.Len(games, 1)
}

func (s *StorageTestSuite) TestDeleteStale() {
	// Setup
	now := time.Now()
	s.Require().NoError(s.storage.Save(s.ctx, testGame("old", entities.StatusPlayerTurn, now.Add(-2*time.Hour))))
	s.Require().NoError(s.storage.Save(s.ctx, testGame("new", entities.StatusPlayerTurn, now)))
	s.Require().NoError(s.storage.Save(s.ctx, testGame("finished", entities.StatusFinished, now.Add(-2*time.Hour))))

	// Execute
	removed, err := s.storage.DeleteStale(s.ctx, now.Add(-time.Hour))

	// Assert
	s.Require().NoError(err)
	s.Equal(1, removed)
	_, err = s.storage.FindByID(s.ctx, "old")
	s.Error(err, "Old game should be cleaned up")
	_, err = s.storage.FindByID(s.ctx, "new")
	s.NoError(err, "New game should still exist")
	_, err = s.storage.FindByID(s.ctx, "finished")
	s.NoError(err, "Finished games are history, not stale")
}

func (s *StorageTestSuite) TestCleanupRoutineStopsOnClose() {
	st, err := New(&storage.Options{
		Path:        filepath.Join(s.T().TempDir(), "auto.json"),
		MaxGameAge:  40 * time.Millisecond,
		AutoCleanup: true,
	})
	s.Require().NoError(err)
	s.Require().NoError(st.Save(s.ctx, testGame("stale", entities.StatusPlayerTurn, time.Now().Add(-time.Hour))))

	s.Eventually(func() bool {
		_, err := st.FindByID(s.ctx, "stale")
		return err != nil
	}, time.Second, 10*time.Millisecond)

	s.NoError(st.Close())
	s.NoError(st.Close())
}

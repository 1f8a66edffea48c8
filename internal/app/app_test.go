package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/config"
	"github.com/EstherBlacksmith/blackjack.V.02/internal/logging"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, storageType string) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		Environment:     "development",
		LogLevel:        logging.ERROR,
		StorageType:     storageType,
		DataDir:         dir,
		SQLitePath:      filepath.Join(dir, "blackjack.db"),
		GamesFilePath:   filepath.Join(dir, "games.json"),
		GameMaxAge:      time.Hour,
		CleanupInterval: time.Hour,
	}
}

// playUntilFinished stands and lets the crupier finish
func playUntilFinished(t *testing.T, a *App, playerID string) *entities.GameRecord {
	ctx := context.Background()
	g, err := a.Games.NewGame(ctx, playerID)
	require.NoError(t, err)
	if g.IsFinished() {
		return g
	}
	g, err = a.Games.StandAndPlay(ctx, g.ID)
	require.NoError(t, err)
	return g
}

func TestStorageBackends(t *testing.T) {
	for _, storageType := range []string{config.StorageMemory, config.StorageSQLite, config.StorageFile} {
		t.Run(storageType, func(t *testing.T) {
			ctx := context.Background()
			a, err := New(ctx, testConfig(t, storageType))
			require.NoError(t, err)
			a.Start(ctx)
			defer a.Close()

			p, created, err := a.Players.Login(ctx, "Esther")
			require.NoError(t, err)
			assert.True(t, created)

			g := playUntilFinished(t, a, p.ID)
			assert.Equal(t, entities.StatusFinished, g.Status)

			stats, err := a.Stats.GetPlayerStats(ctx, p.ID)
			require.NoError(t, err)
			assert.Equal(t, 1, stats.TotalGames)
			require.Len(t, stats.RecentGames, 1)
			assert.Equal(t, g.ID, stats.RecentGames[0].GameID)
			assert.Equal(t, g.Result, stats.RecentGames[0].Result)
		})
	}
}

func TestSQLiteSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.StorageSQLite)

	a, err := New(ctx, cfg)
	require.NoError(t, err)
	p, err := a.Players.CreatePlayer(ctx, "Esther")
	require.NoError(t, err)
	playUntilFinished(t, a, p.ID)
	require.NoError(t, a.Close())

	reopened, err := New(ctx, cfg)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Players.GetPlayer(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Record.TotalGames())
}

func TestUnknownStorage(t *testing.T) {
	_, err := New(context.Background(), testConfig(t, "tape"))

	assert.Error(t, err)
}

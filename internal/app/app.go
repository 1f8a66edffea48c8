package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/config"
	"github.com/EstherBlacksmith/blackjack.V.02/internal/logging"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/db"
	gameRepo "github.com/EstherBlacksmith/blackjack.V.02/pkg/repositories/game"
	playerRepo "github.com/EstherBlacksmith/blackjack.V.02/pkg/repositories/player"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/scheduler"
	gameService "github.com/EstherBlacksmith/blackjack.V.02/pkg/services/game"
	playerService "github.com/EstherBlacksmith/blackjack.V.02/pkg/services/player"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/services/statistics"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/storage"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/storage/file"
)

// App holds the repositories and services every frontend shares
type App struct {
	Config  *config.Config
	Games   *gameService.Service
	Players *playerService.Service
	Stats   *statistics.Service

	gameRepo   gameRepo.Repository
	playerRepo playerRepo.Repository
	conn       *sql.DB
	cleanup    *scheduler.Scheduler
	esMaint    *scheduler.ElasticsearchMaintenanceScheduler
	logger     *logging.Logger
}

// New opens the configured storage and builds the services on top of it
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logging.Default = logging.NewLogger(cfg.LogLevel)

	a := &App{
		Config: cfg,
		logger: logging.Default.With("app"),
	}

	if err := a.openStorage(ctx); err != nil {
		a.Close()
		return nil, err
	}

	if cfg.Elasticsearch.Enabled() {
		es, err := gameRepo.NewElasticsearchRepository(ctx, a.gameRepo, &gameRepo.ElasticsearchConfig{
			URL:         cfg.Elasticsearch.URL,
			Username:    cfg.Elasticsearch.Username,
			Password:    cfg.Elasticsearch.Password,
			IndexPrefix: cfg.Elasticsearch.IndexPrefix,
			Retention:   cfg.Elasticsearch.Retention,
		})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to connect to Elasticsearch: %w", err)
		}
		a.logger.Info("Indexing finished games into %s", es.Index())
		a.gameRepo = es
		a.esMaint = scheduler.NewElasticsearchMaintenanceScheduler(es, 0)
	}

	a.Players = playerService.NewService(a.playerRepo)
	a.Games = gameService.NewService(a.gameRepo, a.playerRepo, gameService.WithResultRecorder(a.Players))
	a.Stats = statistics.NewService(a.gameRepo, a.playerRepo)
	a.cleanup = scheduler.NewStaleGameCleanup(a.gameRepo, cfg.GameMaxAge, cfg.CleanupInterval)

	return a, nil
}

func (a *App) openStorage(ctx context.Context) error {
	cfg := a.Config
	switch cfg.StorageType {
	case config.StorageMemory:
		a.logger.Warn("Using in-memory storage (data will be lost on restart)")
		a.gameRepo = gameRepo.NewMemoryRepository()
		a.playerRepo = playerRepo.NewMemoryRepository()

	case config.StorageSQLite:
		conn, err := db.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to open SQLite database: %w", err)
		}
		a.conn = conn
		a.gameRepo = gameRepo.NewSQLiteRepositoryWithDB(conn)
		a.playerRepo = playerRepo.NewSQLiteRepositoryWithDB(conn)
		a.logger.Info("Using SQLite storage at %s", cfg.SQLitePath)

	case config.StorageFile:
		// Games go to the JSON file; players still need a table with a unique name index
		conn, err := db.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to open SQLite database: %w", err)
		}
		a.conn = conn
		a.playerRepo = playerRepo.NewSQLiteRepositoryWithDB(conn)
		games, err := file.New(&storage.Options{
			Path:       cfg.GamesFilePath,
			MaxGameAge: cfg.GameMaxAge,
		})
		if err != nil {
			return err
		}
		a.gameRepo = games
		a.logger.Info("Using file storage at %s", cfg.GamesFilePath)

	case config.StoragePostgres:
		conn, err := db.OpenPostgres(ctx, cfg.PostgresURL)
		if err != nil {
			return fmt.Errorf("failed to open Postgres database: %w", err)
		}
		a.conn = conn
		a.gameRepo = gameRepo.NewPostgresRepositoryWithDB(conn)
		a.playerRepo = playerRepo.NewPostgresRepositoryWithDB(conn)
		a.logger.Info("Using Postgres storage")

	default:
		return fmt.Errorf("unknown storage type %q", cfg.StorageType)
	}
	return nil
}

// Start runs the background maintenance tasks
func (a *App) Start(ctx context.Context) {
	a.cleanup.Start(ctx)
	if a.esMaint != nil {
		a.esMaint.Start(ctx)
	}
}

// Close stops background tasks and releases storage
func (a *App) Close() error {
	if a.cleanup != nil {
		a.cleanup.Stop()
	}
	if a.esMaint != nil {
		a.esMaint.Stop()
	}

	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if a.gameRepo != nil {
		keep(a.gameRepo.Close())
	}
	if a.playerRepo != nil {
		keep(a.playerRepo.Close())
	}
	if a.conn != nil {
		keep(a.conn.Close())
	}
	return firstErr
}

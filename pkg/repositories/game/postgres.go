package game

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/db"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
)

// PostgresRepository implements the Repository interface on PostgreSQL
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository connects to url and applies migrations
func NewPostgresRepository(ctx context.Context, url string) (*PostgresRepository, error) {
	conn, err := db.OpenPostgres(ctx, url)
	if err != nil {
		return nil, err
	}
	return &PostgresRepository{db: conn}, nil
}

// NewPostgresRepositoryWithDB uses an already migrated connection
func NewPostgresRepositoryWithDB(conn *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: conn}
}

// Save inserts or replaces a game
func (r *PostgresRepository) Save(ctx context.Context, game *entities.GameRecord) error {
	playerCards, dealerCards, err := encodeHands(game)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO games (` + gameColumns + `)
		VALUES ($1, $2, $3, $4::jsonb, $5, $6::jsonb, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			player_id = EXCLUDED.player_id,
			player_name = EXCLUDED.player_name,
			player_cards = EXCLUDED.player_cards,
			player_score = EXCLUDED.player_score,
			crupier_cards = EXCLUDED.crupier_cards,
			crupier_score = EXCLUDED.crupier_score,
			game_status = EXCLUDED.game_status,
			game_result = EXCLUDED.game_result,
			updated_at = EXCLUDED.updated_at,
			finished_at = EXCLUDED.finished_at`

	_, err = r.db.ExecContext(ctx, query,
		game.ID, game.PlayerID, game.PlayerName, playerCards, game.PlayerScore,
		dealerCards, game.DealerScore, string(game.Status), string(game.Result),
		game.CreatedAt.UTC(), game.UpdatedAt.UTC(), nullTime(game.FinishedAt),
	)
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "failed to save game", err)
	}
	return nil
}

// FindByID retrieves a game
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*entities.GameRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+gameColumns+` FROM games WHERE id = $1`, id)
	game, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, NotFound(id)
	}
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to load game", err)
	}
	return game, nil
}

// Delete removes a game
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM games WHERE id = $1`, id)
	return deleteResult(res, err, id)
}

// ListByPlayer returns a player's finished games, newest first
func (r *PostgresRepository) ListByPlayer(ctx context.Context, playerID string, limit int) ([]*entities.GameRecord, error) {
	query := `SELECT ` + gameColumns + ` FROM games
		WHERE player_id = $1 AND game_status = $2
		ORDER BY finished_at DESC`
	args := []interface{}{playerID, string(entities.StatusFinished)}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to list games", err)
	}
	return collectGames(rows)
}

// DeleteStale removes unfinished games last updated before the cutoff
func (r *PostgresRepository) DeleteStale(ctx context.Context, before time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM games WHERE game_status <> $1 AND updated_at < $2`,
		string(entities.StatusFinished), before.UTC())
	if err != nil {
		return 0, types.WrapError(types.ErrDatabaseError, "failed to delete stale games", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, types.WrapError(types.ErrDatabaseError, "failed to delete stale games", err)
	}
	return int(n), nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

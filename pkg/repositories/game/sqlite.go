package game

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/db"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
)

const gameColumns = `id, player_id, player_name, player_cards, player_score,
	crupier_cards, crupier_score, game_status, game_result,
	created_at, updated_at, finished_at`

// SQLiteRepository implements the Repository interface using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at dbPath and applies migrations
func NewSQLiteRepository(ctx context.Context, dbPath string) (*SQLiteRepository, error) {
	conn, err := db.OpenSQLite(ctx, dbPath)
	if err != nil {
		return nil, err
	}
	return &SQLiteRepository{db: conn}, nil
}

// NewSQLiteRepositoryWithDB uses an already migrated connection
func NewSQLiteRepositoryWithDB(conn *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: conn}
}

// Save inserts or replaces a game
func (r *SQLiteRepository) Save(ctx context.Context, game *entities.GameRecord) error {
	playerCards, dealerCards, err := encodeHands(game)
	if err != nil {
		return err
	}

	// Use UPSERT syntax for SQLite
	query := `
		INSERT INTO games (` + gameColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			player_id = excluded.player_id,
			player_name = excluded.player_name,
			player_cards = excluded.player_cards,
			player_score = excluded.player_score,
			crupier_cards = excluded.crupier_cards,
			crupier_score = excluded.crupier_score,
			game_status = excluded.game_status,
			game_result = excluded.game_result,
			updated_at = excluded.updated_at,
			finished_at = excluded.finished_at`

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
func (r *SQLiteRepository) FindByID(ctx context.Context, id string) (*entities.GameRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+gameColumns+` FROM games WHERE id = ?`, id)
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
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, id)
	return deleteResult(res, err, id)
}

// ListByPlayer returns a player's finished games, newest first
func (r *SQLiteRepository) ListByPlayer(ctx context.Context, playerID string, limit int) ([]*entities.GameRecord, error) {
	query := `SELECT ` + gameColumns + ` FROM games
		WHERE player_id = ? AND game_status = ?
		ORDER BY finished_at DESC`
	args := []interface{}{playerID, string(entities.StatusFinished)}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to list games", err)
	}
	return collectGames(rows)
}

// DeleteStale removes unfinished games last updated before the cutoff
func (r *SQLiteRepository) DeleteStale(ctx context.Context, before time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM games WHERE game_status != ? AND updated_at < ?`,
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
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGame(row rowScanner) (*entities.GameRecord, error) {
	var (
		game                     entities.GameRecord
		playerCards, dealerCards []byte
		status, result           string
		finishedAt               sql.NullTime
	)
	err := row.Scan(
		&game.ID, &game.PlayerID, &game.PlayerName, &playerCards, &game.PlayerScore,
		&dealerCards, &game.DealerScore, &status, &result,
		&game.CreatedAt, &game.UpdatedAt, &finishedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(playerCards, &game.PlayerCards); err != nil {
		return nil, fmt.Errorf("decode player cards: %w", err)
	}
	if err := json.Unmarshal(dealerCards, &game.DealerCards); err != nil {
		return nil, fmt.Errorf("decode crupier cards: %w", err)
	}
	game.Status = entities.GameStatus(status)
	game.Result = entities.GameResult(result)
	if finishedAt.Valid {
		t := finishedAt.Time
		game.FinishedAt = &t
	}
	return &game, nil
}

func collectGames(rows *sql.Rows) ([]*entities.GameRecord, error) {
	defer rows.Close()

	games := make([]*entities.GameRecord, 0)
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, types.WrapError(types.ErrDatabaseError, "failed to read game", err)
		}
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to read games", err)
	}
	return games, nil
}

// encodeHands serialises both hands as JSON text
func encodeHands(game *entities.GameRecord) (string, string, error) {
	playerCards := game.PlayerCards
	if playerCards == nil {
		playerCards = []entities.Card{}
	}
	dealerCards := game.DealerCards
	if dealerCards == nil {
		dealerCards = []entities.Card{}
	}

	p, err := json.Marshal(playerCards)
	if err != nil {
		return "", "", types.WrapError(types.ErrInternalError, "failed to encode player cards", err)
	}
	d, err := json.Marshal(dealerCards)
	if err != nil {
		return "", "", types.WrapError(types.ErrInternalError, "failed to encode crupier cards", err)
	}
	return string(p), string(d), nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func deleteResult(res sql.Result, err error, id string) error {
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "failed to delete game", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "failed to delete game", err)
	}
	if n == 0 {
		return NotFound(id)
	}
	return nil
}

package player

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/db"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
	"github.com/mattn/go-sqlite3"
)

const playerColumns = `id, name, wins, losses, pushes, created_at, updated_at`

// SQLiteRepository implements Repository using SQLite
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

// Create stores a new player
func (r *SQLiteRepository) Create(ctx context.Context, player *entities.Player) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO players (`+playerColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		player.ID, player.Name, player.Record.Wins, player.Record.Losses, player.Record.Pushes,
		player.CreatedAt.UTC(), player.UpdatedAt.UTC(),
	)
	if isSQLiteUniqueViolation(err) {
		return Exists(player.Name)
	}
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "failed to create player", err)
	}
	return nil
}

// FindByID returns the player
func (r *SQLiteRepository) FindByID(ctx context.Context, id string) (*entities.Player, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+playerColumns+` FROM players WHERE id = ?`, id)
	return scanOne(row, id)
}

// FindByName returns the player with this name
func (r *SQLiteRepository) FindByName(ctx context.Context, name string) (*entities.Player, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+playerColumns+` FROM players WHERE name = ?`, name)
	return scanOne(row, name)
}

// UpdateStats replaces the player's counters
func (r *SQLiteRepository) UpdateStats(ctx context.Context, id string, record entities.Record) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE players SET wins = ?, losses = ?, pushes = ?, updated_at = ? WHERE id = ?`,
		record.Wins, record.Losses, record.Pushes, time.Now().UTC(), id)
	return affectedOne(res, err, id, "failed to update player")
}

// Delete removes a player
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, id)
	return affectedOne(res, err, id, "failed to delete player")
}

// List returns every player ordered by wins desc, then name
func (r *SQLiteRepository) List(ctx context.Context) ([]*entities.Player, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+playerColumns+` FROM players ORDER BY wins DESC, name ASC`)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to list players", err)
	}
	return collectPlayers(rows)
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func isSQLiteUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPlayer(row rowScanner) (*entities.Player, error) {
	var p entities.Player
	err := row.Scan(&p.ID, &p.Name, &p.Record.Wins, &p.Record.Losses, &p.Record.Pushes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanOne(row *sql.Row, key string) (*entities.Player, error) {
	p, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, NotFound(key)
	}
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to load player", err)
	}
	return p, nil
}

func collectPlayers(rows *sql.Rows) ([]*entities.Player, error) {
	defer rows.Close()

	players := make([]*entities.Player, 0)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, types.WrapError(types.ErrDatabaseError, "failed to read player", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to read players", err)
	}
	return players, nil
}

func affectedOne(res sql.Result, err error, id, message string) error {
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, message, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, message, err)
	}
	if n == 0 {
		return NotFound(id)
	}
	return nil
}

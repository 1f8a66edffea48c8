package player

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/db"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
	"github.com/lib/pq"
)

// PostgresRepository implements Repository on PostgreSQL
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

// Create stores a new player
func (r *PostgresRepository) Create(ctx context.Context, player *entities.Player) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO players (`+playerColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		player.ID, player.Name, player.Record.Wins, player.Record.Losses, player.Record.Pushes,
		player.CreatedAt.UTC(), player.UpdatedAt.UTC(),
	)
	if isUniqueViolation(err) {
		return Exists(player.Name)
	}
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "failed to create player", err)
	}
	return nil
}

// FindByID returns the player
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*entities.Player, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+playerColumns+` FROM players WHERE id = $1`, id)
	return scanOne(row, id)
}

// FindByName returns the player with this name
func (r *PostgresRepository) FindByName(ctx context.Context, name string) (*entities.Player, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+playerColumns+` FROM players WHERE name = $1`, name)
	return scanOne(row, name)
}

// UpdateStats replaces the player's counters
func (r *PostgresRepository) UpdateStats(ctx context.Context, id string, record entities.Record) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE players SET wins = $1, losses = $2, pushes = $3, updated_at = $4 WHERE id = $5`,
		record.Wins, record.Losses, record.Pushes, time.Now().UTC(), id)
	return affectedOne(res, err, id, "failed to update player")
}

// Delete removes a player
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	return affectedOne(res, err, id, "failed to delete player")
}

// List returns every player ordered by wins desc, then name
func (r *PostgresRepository) List(ctx context.Context) ([]*entities.Player, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+playerColumns+` FROM players ORDER BY wins DESC, name ASC`)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to list players", err)
	}
	return collectPlayers(rows)
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/logging"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedded embed.FS

// Dialect selects the SQL flavour a migrator speaks
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// advisoryLockKey serialises concurrent migrators on the same Postgres database
const advisoryLockKey int64 = 7320451196688213

// Migration represents a database migration
type Migration struct {
	Version     string
	Description string
	SQL         string
}

// Migrator handles database migrations
type Migrator struct {
	db      *sql.DB
	dialect Dialect
	source  fs.FS
	dir     string
	logger  *logging.Logger
}

// NewMigrator creates a migrator over the schema bundled with the binary
func NewMigrator(db *sql.DB, dialect Dialect) *Migrator {
	return &Migrator{
		db:      db,
		dialect: dialect,
		source:  embedded,
		dir:     string(dialect),
		logger:  logging.Default.With("migrations"),
	}
}

// NewMigratorFromDir creates a migrator that reads .sql files from a directory
// on disk instead of the bundled schema
func NewMigratorFromDir(db *sql.DB, dialect Dialect, dir string) *Migrator {
	return &Migrator{
		db:      db,
		dialect: dialect,
		source:  os.DirFS(dir),
		dir:     ".",
		logger:  logging.Default.With("migrations"),
	}
}

// WithLogger replaces the migrator's logger
func (m *Migrator) WithLogger(logger *logging.Logger) *Migrator {
	m.logger = logger
	return m
}

// Initialize creates the migrations table if it doesn't exist
func (m *Migrator) Initialize(ctx context.Context) error {
	ddl := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`
	if m.dialect == Postgres {
		ddl = `
			CREATE TABLE IF NOT EXISTS schema_migrations (
				version TEXT PRIMARY KEY,
				description TEXT NOT NULL,
				applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
		`
	}
	_, err := m.db.ExecContext(ctx, ddl)
	return err
}

// GetAppliedMigrations returns a map of already applied migrations
func (m *Migrator) GetAppliedMigrations(ctx context.Context) (map[string]bool, error) {
	rows, err := m.db.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

// LoadMigrations loads all migrations sorted by version
func (m *Migrator) LoadMigrations() ([]Migration, error) {
	entries, err := fs.ReadDir(m.source, m.dir)
	if err != nil {
		return nil, err
	}

	var migrations []Migration
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		content, err := fs.ReadFile(m.source, path.Join(m.dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		migration, err := parseFileName(entry.Name())
		if err != nil {
			return nil, err
		}
		migration.SQL = string(content)
		migrations = append(migrations, migration)
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

// parseFileName splits "001_create_games.sql" into version and description
func parseFileName(name string) (Migration, error) {
	parts := strings.SplitN(strings.TrimSuffix(name, ".sql"), "_", 2)
	if len(parts) != 2 || parts[0] == "" {
		return Migration{}, fmt.Errorf("invalid migration filename: %s", name)
	}
	return Migration{
		Version:     parts[0],
		Description: strings.ReplaceAll(parts[1], "_", " "),
	}, nil
}

// ApplyMigration applies a single migration inside a transaction
func (m *Migrator) ApplyMigration(ctx context.Context, migration Migration) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, migration.SQL); err != nil {
		tx.Rollback()
		return fmt.Errorf("error applying migration %s: %w", migration.Version, err)
	}

	insert := "INSERT INTO schema_migrations (version, description) VALUES (?, ?)"
	if m.dialect == Postgres {
		insert = "INSERT INTO schema_migrations (version, description) VALUES ($1, $2)"
	}
	if _, err := tx.ExecContext(ctx, insert, migration.Version, migration.Description); err != nil {
		tx.Rollback()
		return fmt.Errorf("error recording migration %s: %w", migration.Version, err)
	}

	return tx.Commit()
}

// MigrateUp applies all pending migrations. On Postgres the run holds an
// advisory lock so that several instances starting together apply each
// migration once.
func (m *Migrator) MigrateUp(ctx context.Context) error {
	if m.dialect == Postgres {
		conn, err := m.db.Conn(ctx)
		if err != nil {
			return fmt.Errorf("acquire connection: %w", err)
		}
		defer conn.Close()

		if _, err := conn.ExecContext(ctx, "SELECT pg_advisory_lock($1)", advisoryLockKey); err != nil {
			return fmt.Errorf("acquire migration lock: %w", err)
		}
		defer func() {
			_, _ = conn.ExecContext(context.Background(), "SELECT pg_advisory_unlock($1)", advisoryLockKey)
		}()
	}

	if err := m.Initialize(ctx); err != nil {
		return err
	}

	applied, err := m.GetAppliedMigrations(ctx)
	if err != nil {
		return err
	}

	migrations, err := m.LoadMigrations()
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if applied[migration.Version] {
			m.logger.Debug("Migration %s already applied, skipping", migration.Version)
			continue
		}

		m.logger.Info("Applying migration %s: %s", migration.Version, migration.Description)
		if err := m.ApplyMigration(ctx, migration); err != nil {
			return err
		}
		m.logger.Info("Migration %s applied successfully", migration.Version)
	}

	return nil
}

// CreateMigration writes an empty, numbered migration file into dir
func CreateMigration(dir, description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", fmt.Errorf("migration description is required")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	latest := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		migration, err := parseFileName(entry.Name())
		if err != nil {
			continue
		}
		var n int
		if _, err := fmt.Sscanf(migration.Version, "%d", &n); err == nil && n > latest {
			latest = n
		}
	}

	fileName := fmt.Sprintf("%03d_%s.sql", latest+1, strings.ReplaceAll(strings.TrimSpace(description), " ", "_"))
	filePath := filepath.Join(dir, fileName)

	content := fmt.Sprintf("-- Migration: %s\n-- Created: %s\n\n", description, time.Now().Format(time.RFC3339))
	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		return "", err
	}

	return filePath, nil
}

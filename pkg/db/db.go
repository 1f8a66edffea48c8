package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/EstherBlacksmith/blackjack.V.02/pkg/db/migrations"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLite opens (creating if needed) the SQLite database at dbPath and
// applies pending migrations
func OpenSQLite(ctx context.Context, dbPath string) (*sql.DB, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	// foreign keys and a busy timeout keep concurrent writers from failing fast
	conn, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	if dbPath == ":memory:" {
		conn.SetMaxOpenConns(1)
	}

	if err := migrations.NewMigrator(conn, migrations.SQLite).MigrateUp(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}
	return conn, nil
}

// OpenPostgres connects to the database at url and applies pending migrations
func OpenPostgres(ctx context.Context, url string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := migrations.NewMigrator(conn, migrations.Postgres).MigrateUp(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}
	return conn, nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/EstherBlacksmith/blackjack.V.02/pkg/db"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/db/migrations"
)

func main() {
	createCmd := flag.NewFlagSet("create", flag.ExitOnError)
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)

	dialect := createCmd.String("dialect", string(migrations.SQLite), "sqlite or postgres")
	migrationsDir := createCmd.String("dir", "", "Directory to store migrations (defaults to the bundled schema directory)")

	dbPath := migrateCmd.String("db", "data/blackjack.db", "Path to SQLite database")
	postgresURL := migrateCmd.String("postgres", "", "Postgres connection URL; migrates Postgres instead of SQLite")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "create":
		createCmd.Parse(os.Args[2:])
		if createCmd.NArg() < 1 {
			fmt.Println("Error: Missing migration description")
			createCmd.Usage()
			os.Exit(1)
		}
		dir := *migrationsDir
		if dir == "" {
			dir = "pkg/db/migrations/" + *dialect
		}
		filePath, err := migrations.CreateMigration(dir, createCmd.Arg(0))
		if err != nil {
			log.Fatalf("Error creating migration: %v", err)
		}
		fmt.Printf("Created migration file: %s\n", filePath)
		fmt.Println("Edit this file to add your database schema changes.")

	case "migrate":
		migrateCmd.Parse(os.Args[2:])
		ctx := context.Background()
		// Opening runs every pending bundled migration
		var err error
		if *postgresURL != "" {
			conn, openErr := db.OpenPostgres(ctx, *postgresURL)
			if openErr == nil {
				err = conn.Close()
			}
			err = firstError(openErr, err)
		} else {
			conn, openErr := db.OpenSQLite(ctx, *dbPath)
			if openErr == nil {
				err = conn.Close()
			}
			err = firstError(openErr, err)
		}
		if err != nil {
			log.Fatalf("Error applying migrations: %v", err)
		}
		fmt.Println("Migrations applied successfully!")

	case "help":
		printUsage()

	default:
		fmt.Printf("Error: Unknown command '%s'\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/migration create [-dialect sqlite|postgres] DESCRIPTION  - Create a new migration")
	fmt.Println("  go run ./cmd/migration migrate [-db PATH | -postgres URL]            - Apply pending migrations")
	fmt.Println("  go run ./cmd/migration help                                          - Show this help")
	fmt.Println("\nExamples:")
	fmt.Println("  go run ./cmd/migration create \"add player index\"")
	fmt.Println("  go run ./cmd/migration migrate -db data/blackjack.db")
}

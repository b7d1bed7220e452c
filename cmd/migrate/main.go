package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"pokedex/internal/config"
	"pokedex/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	command := flag.String("command", "up", "Migration command: up, down, down-to, redo, status, create")
	name := flag.String("name", "", "Migration name (required for create)")
	targetVersion := flag.Int64("version", 0, "Target version for down-to command")
	migrationsDir := flag.String("dir", "migrations", "Migrations directory")
	flag.Parse()

	cfg := config.Load()

	db, err := open(repository.DSN(cfg))
	if err != nil {
		if *command != "up" || !isDatabaseDoesNotExistError(err) {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := createDatabase(cfg); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		if db, err = open(repository.DSN(cfg)); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set dialect: %v", err)
	}

	if err := run(db, *command, *migrationsDir, *name, *targetVersion); err != nil {
		log.Fatal(err)
	}
}

func run(db *sql.DB, command, dir, name string, version int64) error {
	switch command {
	case "up":
		if err := goose.Up(db, dir); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Println("Migrations applied successfully")
	case "down":
		if err := goose.Down(db, dir); err != nil {
			return fmt.Errorf("failed to rollback migrations: %w", err)
		}
		log.Println("Migrations rolled back successfully")
	case "down-to":
		if err := goose.DownTo(db, dir, version); err != nil {
			return fmt.Errorf("failed to rollback migrations to version %d: %w", version, err)
		}
		log.Printf("Migrations rolled back to version %d successfully", version)
	case "redo":
		if err := goose.Redo(db, dir); err != nil {
			return fmt.Errorf("failed to redo migration: %w", err)
		}
		log.Println("Latest migration re-applied")
	case "status":
		if err := goose.Status(db, dir); err != nil {
			return fmt.Errorf("failed to get migration status: %w", err)
		}
	case "create":
		if name == "" {
			return errors.New("migration name is required for create command")
		}
		if err := goose.Create(db, dir, name, "sql"); err != nil {
			return fmt.Errorf("failed to create migration: %w", err)
		}
		log.Printf("Created migration: %s", name)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
	return nil
}

func open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func isDatabaseDoesNotExistError(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "3D000"
}

// createDatabase connects to the maintenance database and creates the
// configured one. An already existing database is not an error.
func createDatabase(cfg *config.Config) error {
	admin := *cfg
	admin.Database.Name = "postgres"

	db, err := open(repository.DSN(&admin))
	if err != nil {
		return fmt.Errorf("failed to connect to postgres database: %w", err)
	}
	defer db.Close()

	_, err = db.Exec("CREATE DATABASE " + pq.QuoteIdentifier(cfg.Database.Name))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "42P04" {
			return nil
		}
		return fmt.Errorf("failed to create database: %w", err)
	}

	log.Printf("Database '%s' created successfully", cfg.Database.Name)
	return nil
}

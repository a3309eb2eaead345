// filepath: internal/repository/migration.go
package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"watchlist/internal/db/migrations"
	"watchlist/internal/logging"
	"watchlist/internal/shared"

	"github.com/pressly/goose/v3"
)

// migrationsDir is the root of the embedded migrations FS.
const migrationsDir = "."

func (s *Repository) setupGoose() error {
	goose.SetBaseFS(migrations.FS)
	if s.MigrationLogger != nil {
		goose.SetLogger(s.MigrationLogger)
	} else {
		goose.SetLogger(logging.Log)
	}
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

// EnsureSchemaBootstrapped creates the schema on a fresh store. A store
// that already carries a goose version table is left untouched, even when
// it is outdated.
func (s *Repository) EnsureSchemaBootstrapped() error {
	var name string
	err := s.DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='goose_db_version'").Scan(&name)
	if err == nil {
		logging.Log.Debug("EnsureSchemaBootstrapped: existing store, skipping bootstrap")
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}

	logging.Log.Info("Fresh store detected, creating schema")
	return s.MigrateUp()
}

// ValidateSchema fails with shared.ErrSchemaOutdated unless the store is at
// the latest embedded migration.
func (s *Repository) ValidateSchema() error {
	if err := s.setupGoose(); err != nil {
		return err
	}

	current, err := goose.GetDBVersion(s.DB)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	latest, err := latestVersion()
	if err != nil {
		return err
	}

	if current < latest {
		return fmt.Errorf("%w: at version %d, expected %d (run 'watchlist migrate up')", shared.ErrSchemaOutdated, current, latest)
	}
	return nil
}

func latestVersion() (int64, error) {
	all, err := goose.CollectMigrations(migrationsDir, 0, goose.MaxVersion)
	if err != nil {
		return 0, fmt.Errorf("failed to collect migrations: %w", err)
	}
	last, err := all.Last()
	if err != nil {
		return 0, fmt.Errorf("failed to find latest migration: %w", err)
	}
	return last.Version, nil
}

// MigrateUp applies all pending migrations.
func (s *Repository) MigrateUp() error {
	if err := s.setupGoose(); err != nil {
		return err
	}
	return goose.Up(s.DB, migrationsDir)
}

// MigrateDown rolls back the most recent migration.
func (s *Repository) MigrateDown() error {
	if err := s.setupGoose(); err != nil {
		return err
	}
	return goose.Down(s.DB, migrationsDir)
}

// MigrationStatus logs the state of every migration.
func (s *Repository) MigrationStatus() error {
	if err := s.setupGoose(); err != nil {
		return err
	}
	return goose.Status(s.DB, migrationsDir)
}

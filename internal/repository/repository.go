// filepath: internal/repository/repository.go
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"watchlist/internal/config"
	"watchlist/internal/logging"

	"github.com/Masterminds/squirrel"
	"github.com/patrickmn/go-cache"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

// Repository is the single handle on the watchlist store.
type Repository struct {
	DB      *sql.DB
	Cache   *cache.Cache
	Builder squirrel.StatementBuilderType // SQL Query Builder

	// MigrationLogger receives goose output; defaults to logging.Log.
	MigrationLogger goose.Logger

	// now is the clock used for created_at columns.
	now func() time.Time
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// NewRepository opens (creating if absent) the SQLite file named in cfg.
// It does not touch the schema; see EnsureSchemaBootstrapped.
func NewRepository(cfg *config.Config) (*Repository, error) {
	db, err := sql.Open("sqlite", dataSourceName(cfg.Database.Path, cfg.Database.BusyTimeoutMs))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection serves the whole session.
	db.SetMaxOpenConns(1)

	// sql.Open is lazy; make sure the file can actually be opened or created.
	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logging.Log.Errorf("error closing db: %v", closeErr)
		}
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	logging.Log.Debugf("NewRepository: opened store at '%s'", cfg.Database.Path)

	return &Repository{
		DB:      db,
		Cache:   cache.New(cfg.LookupTTL, 10*time.Minute),
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		now:     time.Now,
	}, nil
}

// dataSourceName builds a modernc DSN with foreign keys enforced on every
// pooled connection. The path is percent-encoded so '?', '#' and '%' in a
// file name reach SQLite literally.
func dataSourceName(path string, busyTimeoutMs int) string {
	params := url.Values{}
	params.Add("_pragma", "foreign_keys(1)")
	params.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeoutMs))
	escaped := (&url.URL{Path: path}).EscapedPath()
	return "file:" + escaped + "?" + params.Encode()
}

// Close closes the underlying database.
func (s *Repository) Close() error {
	return s.DB.Close()
}

// BeginTx starts a transaction on the store.
func (s *Repository) BeginTx(ctx context.Context) (*Tx, error) {
	sqlTx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &Tx{Tx: sqlTx, repo: s}, nil
}

// WithTx runs fn in a transaction. It commits when fn returns nil and rolls
// back otherwise.
func (s *Repository) WithTx(ctx context.Context, fn func(tx *Tx) error) error {
	tx, err := s.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			logging.Log.Errorf("failed to rollback transaction: %v", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Repository) timestamp() string {
	return s.now().UTC().Format(timeLayout)
}

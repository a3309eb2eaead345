// filepath: internal/repository/genre_repo.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"watchlist/internal/logging"
	"watchlist/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/patrickmn/go-cache"
)

func genreCacheKey(name string) string {
	return fmt.Sprintf("genre_by_name_%s", name)
}

// FindGenreByName returns the genre with the given name, or nil if none.
// Hits are cached.
func (s *Repository) FindGenreByName(ctx context.Context, name string) (*models.Genre, error) {
	cacheKey := genreCacheKey(name)
	if cached, found := s.Cache.Get(cacheKey); found {
		genre := cached.(models.Genre)
		return &genre, nil
	}

	logging.Log.Debugf("FindGenreByName: CACHE MISS for '%s'. Querying DB.", name)
	genre, err := findGenre(ctx, s.DB, s.Builder, squirrel.Eq{"name": name})
	if err != nil || genre == nil {
		return genre, err
	}

	s.Cache.Set(cacheKey, *genre, cache.DefaultExpiration)
	return genre, nil
}

// ListGenres returns every genre ordered by id.
func (s *Repository) ListGenres(ctx context.Context) ([]models.Genre, error) {
	query, args, err := s.Builder.Select("id", "name").From("genres").OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build genre query: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := make([]models.Genre, 0)
	for rows.Next() {
		var g models.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

// FindGenreByNameInTx looks a genre up inside the transaction, bypassing the cache.
func (tx *Tx) FindGenreByNameInTx(ctx context.Context, name string) (*models.Genre, error) {
	return findGenre(ctx, tx.Tx, tx.repo.Builder, squirrel.Eq{"name": name})
}

// CreateGenreInTx inserts a genre. A duplicate name yields shared.ErrDuplicateEntity.
func (tx *Tx) CreateGenreInTx(ctx context.Context, name string) (*models.Genre, error) {
	query, args, err := tx.repo.Builder.Insert("genres").Columns("name").Values(name).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build genre insert: %w", err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	logging.Log.Debugf("CreateGenreInTx: Genre '%s' created with ID %d", name, id)
	return &models.Genre{ID: id, Name: name}, nil
}

// DeleteGenreInTx removes a genre. Movies of that genre keep existing with
// no genre. It reports whether a row was removed.
func (tx *Tx) DeleteGenreInTx(ctx context.Context, id int64) (bool, error) {
	genre, err := findGenre(ctx, tx.Tx, tx.repo.Builder, squirrel.Eq{"id": id})
	if err != nil || genre == nil {
		return false, err
	}

	query, args, err := tx.repo.Builder.Delete("genres").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build genre delete: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return false, translateError(err)
	}

	tx.evict(genreCacheKey(genre.Name))
	return true, nil
}

func findGenre(ctx context.Context, q querier, b squirrel.StatementBuilderType, where squirrel.Eq) (*models.Genre, error) {
	query, args, err := b.Select("id", "name").From("genres").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build genre query: %w", err)
	}

	var g models.Genre
	if err := q.QueryRowContext(ctx, query, args...).Scan(&g.ID, &g.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

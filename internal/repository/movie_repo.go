// filepath: internal/repository/movie_repo.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"watchlist/internal/logging"
	"watchlist/internal/models"

	"github.com/Masterminds/squirrel"
)

var movieColumns = []string{"id", "title", "genre_id", "created_at"}

// FindMovie returns the movie with the given title under the given genre
// (nil meaning no genre), or nil if none.
func (s *Repository) FindMovie(ctx context.Context, title string, genreID *int64) (*models.Movie, error) {
	return findMovie(ctx, s.DB, s.Builder, squirrel.Eq{"title": title, "genre_id": nullable(genreID)})
}

// GetMovieByID returns the movie with the given id, or nil if none.
func (s *Repository) GetMovieByID(ctx context.Context, id int64) (*models.Movie, error) {
	return findMovie(ctx, s.DB, s.Builder, squirrel.Eq{"id": id})
}

// ListMovies returns every movie with its genre name, in insertion order.
func (s *Repository) ListMovies(ctx context.Context) ([]models.MovieListing, error) {
	query, args, err := s.Builder.
		Select("m.id", "m.title", "g.name").
		From("movies m").
		LeftJoin("genres g ON g.id = m.genre_id").
		OrderBy("m.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build movie listing query: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]models.MovieListing, 0)
	for rows.Next() {
		var l models.MovieListing
		var genreName sql.NullString
		if err := rows.Scan(&l.ID, &l.Title, &genreName); err != nil {
			return nil, err
		}
		l.GenreName = stringPtr(genreName)
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// ListAllMovies returns every movie row ordered by id.
func (s *Repository) ListAllMovies(ctx context.Context) ([]models.Movie, error) {
	query, args, err := s.Builder.Select(movieColumns...).From("movies").OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build movie query: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make([]models.Movie, 0)
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, *m)
	}
	return movies, rows.Err()
}

// FindMovieInTx is FindMovie inside the transaction.
func (tx *Tx) FindMovieInTx(ctx context.Context, title string, genreID *int64) (*models.Movie, error) {
	return findMovie(ctx, tx.Tx, tx.repo.Builder, squirrel.Eq{"title": title, "genre_id": nullable(genreID)})
}

// GetMovieByIDInTx is GetMovieByID inside the transaction.
func (tx *Tx) GetMovieByIDInTx(ctx context.Context, id int64) (*models.Movie, error) {
	return findMovie(ctx, tx.Tx, tx.repo.Builder, squirrel.Eq{"id": id})
}

// CreateMovieInTx inserts a movie. A duplicate (title, genre) yields
// shared.ErrDuplicateEntity, an unknown genre shared.ErrConstraintViolation.
func (tx *Tx) CreateMovieInTx(ctx context.Context, title string, genreID *int64) (*models.Movie, error) {
	createdAt := tx.repo.timestamp()
	query, args, err := tx.repo.Builder.
		Insert("movies").
		Columns("title", "genre_id", "created_at").
		Values(title, nullable(genreID), createdAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build movie insert: %w", err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	logging.Log.Debugf("CreateMovieInTx: Movie '%s' created with ID %d", title, id)
	return findMovie(ctx, tx.Tx, tx.repo.Builder, squirrel.Eq{"id": id})
}

// DeleteMovieInTx removes a movie and, through the foreign key, its reviews.
// It reports whether a row was removed.
func (tx *Tx) DeleteMovieInTx(ctx context.Context, id int64) (bool, error) {
	query, args, err := tx.repo.Builder.Delete("movies").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build movie delete: %w", err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, translateError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func findMovie(ctx context.Context, q querier, b squirrel.StatementBuilderType, where squirrel.Eq) (*models.Movie, error) {
	query, args, err := b.Select(movieColumns...).From("movies").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build movie query: %w", err)
	}

	m, err := scanMovie(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return m, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMovie(row rowScanner) (*models.Movie, error) {
	var m models.Movie
	var genreID sql.NullInt64
	var createdAt sqliteTime
	if err := row.Scan(&m.ID, &m.Title, &genreID, &createdAt); err != nil {
		return nil, err
	}
	m.GenreID = int64Ptr(genreID)
	m.CreatedAt = createdAt.Time
	return &m, nil
}

// filepath: internal/repository/review_repo.go
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

var reviewColumns = []string{"id", "user_id", "movie_id", "rating", "comment", "created_at"}

// FindReview returns the review of movieID by userID, or nil if none.
func (s *Repository) FindReview(ctx context.Context, userID, movieID int64) (*models.Review, error) {
	return findReview(ctx, s.DB, s.Builder, userID, movieID)
}

// ListReviewsJoined returns every review with its username and movie title.
// Reviews whose user or movie is gone are excluded by the inner joins.
func (s *Repository) ListReviewsJoined(ctx context.Context) ([]models.ReviewListing, error) {
	query, args, err := s.Builder.
		Select("r.id", "u.username", "m.title", "r.rating", "r.comment", "r.created_at").
		From("reviews r").
		Join("users u ON u.id = r.user_id").
		Join("movies m ON m.id = r.movie_id").
		OrderBy("r.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build review listing query: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]models.ReviewListing, 0)
	for rows.Next() {
		var l models.ReviewListing
		var comment sql.NullString
		var createdAt sqliteTime
		if err := rows.Scan(&l.ID, &l.Username, &l.MovieTitle, &l.Rating, &comment, &createdAt); err != nil {
			return nil, err
		}
		l.Comment = stringPtr(comment)
		l.CreatedAt = createdAt.Time
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// FindReviewInTx is FindReview inside the transaction.
func (tx *Tx) FindReviewInTx(ctx context.Context, userID, movieID int64) (*models.Review, error) {
	return findReview(ctx, tx.Tx, tx.repo.Builder, userID, movieID)
}

// CreateReviewInTx inserts a review. A second review of the same movie by the
// same user yields shared.ErrDuplicateEntity; a rating outside 1..5 or an
// unknown user/movie yields shared.ErrConstraintViolation.
func (tx *Tx) CreateReviewInTx(ctx context.Context, userID, movieID int64, rating int, comment *string) (*models.Review, error) {
	query, args, err := tx.repo.Builder.
		Insert("reviews").
		Columns("user_id", "movie_id", "rating", "comment", "created_at").
		Values(userID, movieID, rating, nullable(comment), tx.repo.timestamp()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build review insert: %w", err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	logging.Log.Debugf("CreateReviewInTx: Review %d created (user %d, movie %d)", id, userID, movieID)

	query, args, err = tx.repo.Builder.Select(reviewColumns...).From("reviews").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build review query: %w", err)
	}
	return scanReview(tx.QueryRowContext(ctx, query, args...))
}

// CountReviewsForMovieInTx counts the reviews attached to a movie.
func (tx *Tx) CountReviewsForMovieInTx(ctx context.Context, movieID int64) (int, error) {
	return countReviews(ctx, tx.Tx, tx.repo.Builder, squirrel.Eq{"movie_id": movieID})
}

// CountReviewsForUserInTx counts the reviews written by a user.
func (tx *Tx) CountReviewsForUserInTx(ctx context.Context, userID int64) (int, error) {
	return countReviews(ctx, tx.Tx, tx.repo.Builder, squirrel.Eq{"user_id": userID})
}

func countReviews(ctx context.Context, q querier, b squirrel.StatementBuilderType, where squirrel.Eq) (int, error) {
	query, args, err := b.Select("COUNT(*)").From("reviews").Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build review count query: %w", err)
	}

	var count int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func findReview(ctx context.Context, q querier, b squirrel.StatementBuilderType, userID, movieID int64) (*models.Review, error) {
	query, args, err := b.Select(reviewColumns...).
		From("reviews").
		Where(squirrel.Eq{"user_id": userID, "movie_id": movieID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build review query: %w", err)
	}

	review, err := scanReview(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return review, err
}

func scanReview(row rowScanner) (*models.Review, error) {
	var r models.Review
	var comment sql.NullString
	var createdAt sqliteTime
	if err := row.Scan(&r.ID, &r.UserID, &r.MovieID, &r.Rating, &comment, &createdAt); err != nil {
		return nil, err
	}
	r.Comment = stringPtr(comment)
	r.CreatedAt = createdAt.Time
	return &r, nil
}

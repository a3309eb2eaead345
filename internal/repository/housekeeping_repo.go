// filepath: internal/repository/housekeeping_repo.go
package repository

import (
	"context"
	"fmt"

	"watchlist/internal/models"
)

// ListUnusedGenres returns the genres no movie refers to, ordered by id.
func (s *Repository) ListUnusedGenres(ctx context.Context) ([]models.Genre, error) {
	query, args, err := s.Builder.
		Select("g.id", "g.name").
		From("genres g").
		LeftJoin("movies m ON m.genre_id = g.id").
		Where("m.id IS NULL").
		OrderBy("g.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build unused genre query: %w", err)
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

// DeleteGenre removes one genre in its own transaction.
func (s *Repository) DeleteGenre(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := s.WithTx(ctx, func(tx *Tx) error {
		var err error
		deleted, err = tx.DeleteGenreInTx(ctx, id)
		return err
	})
	return deleted, err
}

// GetStoreStats counts the rows of every table and reports the file size
// as SQLite sees it.
func (s *Repository) GetStoreStats(ctx context.Context) (*models.StoreStats, error) {
	stats := &models.StoreStats{}
	counts := []struct {
		table string
		dest  *int
	}{
		{"genres", &stats.Genres},
		{"movies", &stats.Movies},
		{"users", &stats.Users},
		{"reviews", &stats.Reviews},
	}
	for _, c := range counts {
		query, args, err := s.Builder.Select("COUNT(*)").From(c.table).ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build count query: %w", err)
		}
		if err := s.DB.QueryRowContext(ctx, query, args...).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.table, err)
		}
	}

	var pageCount, pageSize int64
	if err := s.DB.QueryRowContext(ctx, "PRAGMA page_count").Scan(&pageCount); err != nil {
		return nil, fmt.Errorf("failed to read page_count: %w", err)
	}
	if err := s.DB.QueryRowContext(ctx, "PRAGMA page_size").Scan(&pageSize); err != nil {
		return nil, fmt.Errorf("failed to read page_size: %w", err)
	}
	stats.SizeBytes = pageCount * pageSize
	return stats, nil
}

// Vacuum rebuilds the store file, returning free pages to the filesystem.
func (s *Repository) Vacuum(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, "VACUUM"); err != nil {
		return fmt.Errorf("vacuum failed: %w", err)
	}
	return nil
}

// filepath: internal/services/movie_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"watchlist/internal/logging"
	"watchlist/internal/logging/audit"
	"watchlist/internal/models"
	"watchlist/internal/repository"
)

type movieService struct {
	Repo    *repository.Repository
	Auditor audit.Auditor
}

// NewMovieService creates a new movie service.
func NewMovieService(repo *repository.Repository, auditor audit.Auditor) *movieService {
	if auditor == nil {
		auditor = audit.Nop{}
	}
	return &movieService{Repo: repo, Auditor: auditor}
}

// Compile-time check to ensure movieService implements MovieService
var _ MovieService = (*movieService)(nil)

// AddMovie creates the movie under the named genre, creating the genre when
// it does not exist yet. Both inserts share one transaction.
func (s *movieService) AddMovie(ctx context.Context, payload models.MovieCreatePayload) (*models.Movie, error) {
	payload.Title = strings.TrimSpace(payload.Title)
	payload.GenreName = strings.TrimSpace(payload.GenreName)
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	genre, err := s.Repo.FindGenreByName(ctx, payload.GenreName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up genre '%s': %w", payload.GenreName, err)
	}

	var movie *models.Movie
	createdGenre := false
	err = s.Repo.WithTx(ctx, func(tx *repository.Tx) error {
		if genre == nil {
			if genre, err = tx.FindGenreByNameInTx(ctx, payload.GenreName); err != nil {
				return err
			}
		}
		if genre == nil {
			if genre, err = tx.CreateGenreInTx(ctx, payload.GenreName); err != nil {
				return fmt.Errorf("failed to create genre '%s': %w", payload.GenreName, err)
			}
			createdGenre = true
		}

		existing, err := tx.FindMovieInTx(ctx, payload.Title, &genre.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrMovieExists
		}

		movie, err = tx.CreateMovieInTx(ctx, payload.Title, &genre.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logging.Log.Infof("AddMovie: Movie '%s' (ID %d) added under genre '%s'", movie.Title, movie.ID, genre.Name)
	s.Auditor.Log(ctx, "movie.create", fmt.Sprintf("Movie:%d", movie.ID), map[string]interface{}{
		"title":         movie.Title,
		"genre":         genre.Name,
		"genre_created": createdGenre,
	})
	return movie, nil
}

func (s *movieService) ListMovies(ctx context.Context) ([]models.MovieListing, error) {
	return s.Repo.ListMovies(ctx)
}

func (s *movieService) ListAllMovies(ctx context.Context) ([]models.Movie, error) {
	return s.Repo.ListAllMovies(ctx)
}

func (s *movieService) ListGenres(ctx context.Context) ([]models.Genre, error) {
	return s.Repo.ListGenres(ctx)
}

// DeleteMovie removes the movie together with its reviews and returns the
// removed row.
func (s *movieService) DeleteMovie(ctx context.Context, id int64) (*models.Movie, error) {
	var (
		movie   *models.Movie
		reviews int
	)
	err := s.Repo.WithTx(ctx, func(tx *repository.Tx) error {
		var err error
		if movie, err = tx.GetMovieByIDInTx(ctx, id); err != nil {
			return err
		}
		if movie == nil {
			return ErrMovieNotFound
		}
		if reviews, err = tx.CountReviewsForMovieInTx(ctx, id); err != nil {
			return err
		}
		deleted, err := tx.DeleteMovieInTx(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrMovieNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.Log.Infof("DeleteMovie: Movie '%s' (ID %d) deleted along with %d review(s)", movie.Title, movie.ID, reviews)
	s.Auditor.Log(ctx, "movie.delete", fmt.Sprintf("Movie:%d", movie.ID), map[string]interface{}{
		"title":           movie.Title,
		"reviews_removed": reviews,
	})
	return movie, nil
}

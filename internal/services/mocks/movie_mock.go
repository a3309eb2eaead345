// filepath: internal/services/mocks/movie_mock.go
package mocks

import (
	"context"

	"watchlist/internal/models"
	"watchlist/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockMovieService is a mock implementation of services.MovieService
type MockMovieService struct {
	mock.Mock
}

var _ services.MovieService = (*MockMovieService)(nil)

func (m *MockMovieService) AddMovie(ctx context.Context, payload models.MovieCreatePayload) (*models.Movie, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieService) ListMovies(ctx context.Context) ([]models.MovieListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MovieListing), args.Error(1)
}

func (m *MockMovieService) ListAllMovies(ctx context.Context) ([]models.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *MockMovieService) DeleteMovie(ctx context.Context, id int64) (*models.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieService) ListGenres(ctx context.Context) ([]models.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Genre), args.Error(1)
}

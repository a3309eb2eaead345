// filepath: internal/services/interfaces.go
package services

import (
	"context"

	"watchlist/internal/models"
)

// MovieService defines the interface for movie and genre management.
type MovieService interface {
	AddMovie(ctx context.Context, payload models.MovieCreatePayload) (*models.Movie, error)
	ListMovies(ctx context.Context) ([]models.MovieListing, error)
	ListAllMovies(ctx context.Context) ([]models.Movie, error)
	DeleteMovie(ctx context.Context, id int64) (*models.Movie, error)
	ListGenres(ctx context.Context) ([]models.Genre, error)
}

// UserService defines the interface for viewer accounts.
type UserService interface {
	AddUser(ctx context.Context, payload models.UserCreatePayload) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id int64) (*models.User, error)
}

// ReviewService defines the interface for reviews.
type ReviewService interface {
	AddReview(ctx context.Context, payload models.ReviewCreatePayload) (*models.Review, error)
	FindReview(ctx context.Context, userID, movieID int64) (*models.Review, error)
	ListReviews(ctx context.Context) ([]models.ReviewListing, error)
}

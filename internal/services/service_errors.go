// filepath: internal/services/service_errors.go
package services

import (
	"fmt"

	"watchlist/internal/models"
	"watchlist/internal/shared"
)

// Errors returned by the services. Each wraps one of the shared error kinds.
var (
	ErrMovieExists     = fmt.Errorf("movie %w", shared.ErrDuplicateEntity)
	ErrUsernameExists  = fmt.Errorf("username %w", shared.ErrDuplicateEntity)
	ErrEmailExists     = fmt.Errorf("email %w", shared.ErrDuplicateEntity)
	ErrAlreadyReviewed = fmt.Errorf("review %w", shared.ErrDuplicateEntity)
	ErrMovieNotFound   = fmt.Errorf("movie %w", shared.ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("user %w", shared.ErrNotFound)
	ErrInvalidRating   = fmt.Errorf("%w: rating must be between %d and %d", shared.ErrConstraintViolation, models.MinRating, models.MaxRating)
)

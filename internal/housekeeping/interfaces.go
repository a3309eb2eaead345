// filepath: internal/housekeeping/interfaces.go
package housekeeping

import (
	"context"

	"watchlist/internal/models"
)

// DBTX is an interface that defines the database methods required by the housekeeping run.
// This decouples the housekeeping logic from the concrete database implementation.
type DBTX interface {
	ListUnusedGenres(ctx context.Context) ([]models.Genre, error)
	DeleteGenre(ctx context.Context, id int64) (bool, error)
	GetStoreStats(ctx context.Context) (*models.StoreStats, error)
	Vacuum(ctx context.Context) error
}

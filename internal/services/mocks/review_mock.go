// filepath: internal/services/mocks/review_mock.go
package mocks

import (
	"context"

	"watchlist/internal/models"
	"watchlist/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockReviewService is a mock implementation of services.ReviewService
type MockReviewService struct {
	mock.Mock
}

var _ services.ReviewService = (*MockReviewService)(nil)

func (m *MockReviewService) AddReview(ctx context.Context, payload models.ReviewCreatePayload) (*models.Review, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewService) FindReview(ctx context.Context, userID, movieID int64) (*models.Review, error) {
	args := m.Called(ctx, userID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewService) ListReviews(ctx context.Context) ([]models.ReviewListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReviewListing), args.Error(1)
}

// filepath: internal/services/review_service.go
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

type reviewService struct {
	Repo    *repository.Repository
	Auditor audit.Auditor
}

// NewReviewService creates a new review service.
func NewReviewService(repo *repository.Repository, auditor audit.Auditor) *reviewService {
	if auditor == nil {
		auditor = audit.Nop{}
	}
	return &reviewService{Repo: repo, Auditor: auditor}
}

var _ ReviewService = (*reviewService)(nil)

// AddReview stores a rating of a movie by a user. A user reviews a movie at
// most once.
func (s *reviewService) AddReview(ctx context.Context, payload models.ReviewCreatePayload) (*models.Review, error) {
	if payload.Rating < models.MinRating || payload.Rating > models.MaxRating {
		return nil, ErrInvalidRating
	}
	if payload.Comment != nil {
		comment := strings.TrimSpace(*payload.Comment)
		payload.Comment = &comment
		if comment == "" {
			payload.Comment = nil
		}
	}
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	var review *models.Review
	err := s.Repo.WithTx(ctx, func(tx *repository.Tx) error {
		existing, err := tx.FindReviewInTx(ctx, payload.UserID, payload.MovieID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrAlreadyReviewed
		}
		review, err = tx.CreateReviewInTx(ctx, payload.UserID, payload.MovieID, payload.Rating, payload.Comment)
		return err
	})
	if err != nil {
		return nil, err
	}

	logging.Log.Infof("AddReview: Review %d created (user %d, movie %d, rating %d)", review.ID, review.UserID, review.MovieID, review.Rating)
	s.Auditor.Log(ctx, "review.create", fmt.Sprintf("Review:%d", review.ID), map[string]interface{}{
		"user_id":  review.UserID,
		"movie_id": review.MovieID,
		"rating":   review.Rating,
	})
	return review, nil
}

func (s *reviewService) FindReview(ctx context.Context, userID, movieID int64) (*models.Review, error) {
	return s.Repo.FindReview(ctx, userID, movieID)
}

func (s *reviewService) ListReviews(ctx context.Context) ([]models.ReviewListing, error) {
	return s.Repo.ListReviewsJoined(ctx)
}

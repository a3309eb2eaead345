// filepath: internal/services/user_service.go
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

type userService struct {
	Repo    *repository.Repository
	Auditor audit.Auditor
}

// NewUserService creates a new user service.
func NewUserService(repo *repository.Repository, auditor audit.Auditor) *userService {
	if auditor == nil {
		auditor = audit.Nop{}
	}
	return &userService{Repo: repo, Auditor: auditor}
}

var _ UserService = (*userService)(nil)

// AddUser registers a viewer. Username and, when given, email must be unused.
func (s *userService) AddUser(ctx context.Context, payload models.UserCreatePayload) (*models.User, error) {
	payload.Username = strings.TrimSpace(payload.Username)
	if payload.Email != nil {
		email := strings.TrimSpace(*payload.Email)
		payload.Email = &email
		if email == "" {
			payload.Email = nil
		}
	}
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	if existing, err := s.Repo.FindUserByUsername(ctx, payload.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrUsernameExists
	}
	if payload.Email != nil {
		if existing, err := s.Repo.FindUserByEmail(ctx, *payload.Email); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, ErrEmailExists
		}
	}

	var user *models.User
	err := s.Repo.WithTx(ctx, func(tx *repository.Tx) error {
		var err error
		user, err = tx.CreateUserInTx(ctx, payload.Username, payload.Email)
		return err
	})
	if err != nil {
		return nil, err
	}

	logging.Log.Infof("AddUser: User '%s' created with ID %d", user.Username, user.ID)
	s.Auditor.Log(ctx, "user.create", fmt.Sprintf("User:%d", user.ID), map[string]interface{}{
		"username": user.Username,
	})
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.ListUsers(ctx)
}

// DeleteUser removes the user together with their reviews.
func (s *userService) DeleteUser(ctx context.Context, id int64) (*models.User, error) {
	var (
		user    *models.User
		reviews int
	)
	err := s.Repo.WithTx(ctx, func(tx *repository.Tx) error {
		var err error
		if user, err = tx.GetUserByIDInTx(ctx, id); err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		if reviews, err = tx.CountReviewsForUserInTx(ctx, id); err != nil {
			return err
		}
		deleted, err := tx.DeleteUserInTx(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.Log.Infof("DeleteUser: User '%s' (ID %d) deleted along with %d review(s)", user.Username, user.ID, reviews)
	s.Auditor.Log(ctx, "user.delete", fmt.Sprintf("User:%d", user.ID), map[string]interface{}{
		"username":        user.Username,
		"reviews_removed": reviews,
	})
	return user, nil
}

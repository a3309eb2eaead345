// filepath: internal/repository/user_repo.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"watchlist/internal/logging"
	"watchlist/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/patrickmn/go-cache"
)

var userColumns = []string{"id", "username", "email", "created_at"}

func userByNameKey(username string) string { return fmt.Sprintf("user_by_name_%s", username) }
func userByEmailKey(email string) string   { return fmt.Sprintf("user_by_email_%s", email) }

// FindUserByUsername retrieves a user by username, or nil if none, using a cache for performance.
func (s *Repository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.cachedUser(ctx, userByNameKey(username), squirrel.Eq{"username": username})
}

// FindUserByEmail retrieves a user by email, or nil if none, using a cache for performance.
func (s *Repository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.cachedUser(ctx, userByEmailKey(email), squirrel.Eq{"email": email})
}

func (s *Repository) cachedUser(ctx context.Context, cacheKey string, where squirrel.Eq) (*models.User, error) {
	if cached, found := s.Cache.Get(cacheKey); found {
		user := cached.(models.User)
		return &user, nil
	}

	logging.Log.Debugf("cachedUser: CACHE MISS for '%s'. Querying DB.", cacheKey)
	user, err := findUser(ctx, s.DB, s.Builder, where)
	if err != nil || user == nil {
		return user, err
	}

	s.Cache.Set(cacheKey, *user, cache.DefaultExpiration)
	return user, nil
}

// GetUserByID retrieves a user by id, or nil if none.
func (s *Repository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return findUser(ctx, s.DB, s.Builder, squirrel.Eq{"id": id})
}

// ListUsers retrieves all users ordered by id.
func (s *Repository) ListUsers(ctx context.Context) ([]models.User, error) {
	query, args, err := s.Builder.Select(userColumns...).From("users").OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user query: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// FindUserByUsernameInTx is FindUserByUsername inside the transaction, bypassing the cache.
func (tx *Tx) FindUserByUsernameInTx(ctx context.Context, username string) (*models.User, error) {
	return findUser(ctx, tx.Tx, tx.repo.Builder, squirrel.Eq{"username": username})
}

// FindUserByEmailInTx is FindUserByEmail inside the transaction, bypassing the cache.
func (tx *Tx) FindUserByEmailInTx(ctx context.Context, email string) (*models.User, error) {
	return findUser(ctx, tx.Tx, tx.repo.Builder, squirrel.Eq{"email": email})
}

// GetUserByIDInTx is GetUserByID inside the transaction.
func (tx *Tx) GetUserByIDInTx(ctx context.Context, id int64) (*models.User, error) {
	return findUser(ctx, tx.Tx, tx.repo.Builder, squirrel.Eq{"id": id})
}

// CreateUserInTx inserts a user. A taken username or email yields shared.ErrDuplicateEntity.
func (tx *Tx) CreateUserInTx(ctx context.Context, username string, email *string) (*models.User, error) {
	query, args, err := tx.repo.Builder.
		Insert("users").
		Columns("username", "email", "created_at").
		Values(username, nullable(email), tx.repo.timestamp()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user insert: %w", err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	logging.Log.Debugf("CreateUserInTx: User '%s' created with ID %d", username, id)
	return findUser(ctx, tx.Tx, tx.repo.Builder, squirrel.Eq{"id": id})
}

// DeleteUserInTx removes a user and, through the foreign key, their reviews.
// It reports whether a row was removed.
func (tx *Tx) DeleteUserInTx(ctx context.Context, id int64) (bool, error) {
	user, err := findUser(ctx, tx.Tx, tx.repo.Builder, squirrel.Eq{"id": id})
	if err != nil || user == nil {
		return false, err
	}

	query, args, err := tx.repo.Builder.Delete("users").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build user delete: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return false, translateError(err)
	}

	// Invalidate cache entries for the deleted user
	tx.evict(userByNameKey(user.Username))
	if user.Email != nil {
		tx.evict(userByEmailKey(*user.Email))
	}
	return true, nil
}

func findUser(ctx context.Context, q querier, b squirrel.StatementBuilderType, where squirrel.Eq) (*models.User, error) {
	query, args, err := b.Select(userColumns...).From("users").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user query: %w", err)
	}

	user, err := scanUser(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	var email sql.NullString
	var createdAt sqliteTime
	if err := row.Scan(&user.ID, &user.Username, &email, &createdAt); err != nil {
		return nil, err
	}
	user.Email = stringPtr(email)
	user.CreatedAt = createdAt.Time
	return &user, nil
}

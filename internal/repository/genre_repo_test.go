package repository

import (
	"context"
	"testing"

	"watchlist/internal/models"
	"watchlist/internal/shared"

	"github.com/stretchr/testify/assert"
)

func TestGenreCRUD(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	missing, err := repo.FindGenreByName(ctx, "Sci-Fi")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	var created *models.Genre
	inTx(t, repo, func(tx *Tx) error {
		created, err = tx.CreateGenreInTx(ctx, "Sci-Fi")
		return err
	})
	assert.NotZero(t, created.ID)

	found, err := repo.FindGenreByName(ctx, "Sci-Fi")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	// Duplicate name is rejected and leaves the original row alone.
	err = repo.WithTx(ctx, func(tx *Tx) error {
		_, err := tx.CreateGenreInTx(ctx, "Sci-Fi")
		return err
	})
	assert.ErrorIs(t, err, shared.ErrDuplicateEntity)

	found, err = repo.FindGenreByName(ctx, "Sci-Fi")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	genres, err := repo.ListGenres(ctx)
	assert.NoError(t, err)
	assert.Len(t, genres, 1)
}

func TestListGenres_Order(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	inTx(t, repo, func(tx *Tx) error {
		for _, name := range []string{"Drama", "Comedy", "Action"} {
			if _, err := tx.CreateGenreInTx(ctx, name); err != nil {
				return err
			}
		}
		return nil
	})

	genres, err := repo.ListGenres(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Drama", "Comedy", "Action"}, []string{genres[0].Name, genres[1].Name, genres[2].Name})
}

func TestDeleteGenre_SetsMovieGenreNull(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	var genre *models.Genre
	inTx(t, repo, func(tx *Tx) error {
		var err error
		genre, err = tx.CreateGenreInTx(ctx, "Western")
		return err
	})
	movie := createTestMovie(t, repo, "Unforgiven", &genre.ID)

	// Warm the cache so the eviction is observable.
	_, err := repo.FindGenreByName(ctx, "Western")
	assert.NoError(t, err)

	var deleted bool
	inTx(t, repo, func(tx *Tx) error {
		deleted, err = tx.DeleteGenreInTx(ctx, genre.ID)
		return err
	})
	assert.True(t, deleted)

	after, err := repo.GetMovieByID(ctx, movie.ID)
	assert.NoError(t, err)
	assert.NotNil(t, after, "movie must survive genre deletion")
	assert.Nil(t, after.GenreID)

	cached, err := repo.FindGenreByName(ctx, "Western")
	assert.NoError(t, err)
	assert.Nil(t, cached)

	inTx(t, repo, func(tx *Tx) error {
		deleted, err = tx.DeleteGenreInTx(ctx, genre.ID)
		return err
	})
	assert.False(t, deleted)
}

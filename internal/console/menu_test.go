// filepath: internal/console/menu_test.go
package console

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"watchlist/internal/models"
	"watchlist/internal/services"
	"watchlist/internal/services/mocks"
	"watchlist/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type menuFixture struct {
	movies  *mocks.MockMovieService
	users   *mocks.MockUserService
	reviews *mocks.MockReviewService
	out     *bytes.Buffer
	menu    *Menu
}

func newMenuFixture(input string) *menuFixture {
	f := &menuFixture{
		movies:  &mocks.MockMovieService{},
		users:   &mocks.MockUserService{},
		reviews: &mocks.MockReviewService{},
		out:     &bytes.Buffer{},
	}
	f.menu = NewMenu(strings.NewReader(input), f.out, f.movies, f.users, f.reviews)
	return f
}

func (f *menuFixture) run(t *testing.T) string {
	t.Helper()
	assert.NoError(t, f.menu.Run(context.Background()))
	assert.Equal(t, Stopped, f.menu.State())
	f.movies.AssertExpectations(t)
	f.users.AssertExpectations(t)
	f.reviews.AssertExpectations(t)
	return f.out.String()
}

func strPtr(s string) *string { return &s }

func TestMenu_ExitAndInvalidChoice(t *testing.T) {
	f := newMenuFixture("x\n42\n0\n")
	out := f.run(t)

	assert.Equal(t, 2, strings.Count(out, "Invalid option. Try again."))
	assert.Equal(t, 3, strings.Count(out, "--- Movie Watchlist CLI ---"))
	assert.Contains(t, out, "9. List reviews")
	assert.Contains(t, out, "0. Exit")
	assert.True(t, strings.HasSuffix(out, "See you on the next one buddy!\n"))
}

func TestMenu_StopsOnEndOfInput(t *testing.T) {
	f := newMenuFixture("2\n")
	f.movies.On("ListMovies", mock.Anything).Return([]models.MovieListing{}, nil).Once()

	out := f.run(t)
	assert.Contains(t, out, "No movies found.")
	assert.NotContains(t, out, "See you on the next one buddy!")
}

func TestMenu_StopsWhenInputEndsMidCommand(t *testing.T) {
	f := newMenuFixture("1\nDune\n")
	out := f.run(t)

	assert.Contains(t, out, "Genre: ")
	f.movies.AssertNotCalled(t, "AddMovie", mock.Anything, mock.Anything)
}

func TestMenu_AddMovie(t *testing.T) {
	f := newMenuFixture("1\n\nDune\nSci-Fi\n0\n")
	genreID := int64(1)
	f.movies.On("AddMovie", mock.Anything, models.MovieCreatePayload{Title: "Dune", GenreName: "Sci-Fi"}).
		Return(&models.Movie{ID: 1, Title: "Dune", GenreID: &genreID}, nil).Once()

	out := f.run(t)
	assert.Contains(t, out, "Input cannot be empty. Try again.")
	assert.Contains(t, out, "'Dune' added under genre 'Sci-Fi'.")
}

func TestMenu_OverlongLineIsReprompted(t *testing.T) {
	f := newMenuFixture("1\n" + strings.Repeat("x", 70000) + "\nDune\nSci-Fi\n2\n0\n")
	f.movies.On("AddMovie", mock.Anything, models.MovieCreatePayload{Title: "Dune", GenreName: "Sci-Fi"}).
		Return(&models.Movie{ID: 1, Title: "Dune"}, nil).Once()
	f.movies.On("ListMovies", mock.Anything).Return([]models.MovieListing{{ID: 1, Title: "Dune", GenreName: strPtr("Sci-Fi")}}, nil).Once()

	out := f.run(t)
	assert.Contains(t, out, "Input must be at most 200 characters. Try again.")
	assert.Contains(t, out, "'Dune' added under genre 'Sci-Fi'.")
	assert.Contains(t, out, "See you on the next one buddy!")
}

func TestMenu_AddUser_UsernameTooLong(t *testing.T) {
	f := newMenuFixture("5\n" + strings.Repeat("u", 81) + "\nada\n\n0\n")
	f.users.On("AddUser", mock.Anything, models.UserCreatePayload{Username: "ada"}).
		Return(&models.User{ID: 1, Username: "ada"}, nil).Once()

	out := f.run(t)
	assert.Contains(t, out, "Input must be at most 80 characters. Try again.")
	assert.Contains(t, out, "User 'ada' added.")
	assert.NotContains(t, out, "Invalid input")
}

func TestMenu_FailureKeepsLoopRunning(t *testing.T) {
	f := newMenuFixture("1\nDune\nSci-Fi\n5\nada\n\n6\n0\n")
	f.movies.On("AddMovie", mock.Anything, mock.Anything).Return(nil, services.ErrMovieExists).Once()
	f.users.On("AddUser", mock.Anything, models.UserCreatePayload{Username: "ada"}).Return(nil, services.ErrUsernameExists).Once()
	f.users.On("ListUsers", mock.Anything).Return([]models.User{
		{ID: 1, Username: "ada", Email: strPtr("ada@example.com")},
		{ID: 2, Username: "bob"},
	}, nil).Once()

	out := f.run(t)
	assert.Contains(t, out, "This movie already exists.")
	assert.Contains(t, out, "Username already exists.")
	assert.Contains(t, out, "ada@example.com")
	assert.Contains(t, out, "See you on the next one buddy!")
}

func TestMenu_DeleteMovie(t *testing.T) {
	movies := []models.Movie{{ID: 1, Title: "Dune"}, {ID: 2, Title: "Heat"}}

	t.Run("Deleted", func(t *testing.T) {
		f := newMenuFixture("3\n2\n0\n")
		f.movies.On("ListAllMovies", mock.Anything).Return(movies, nil).Once()
		f.movies.On("DeleteMovie", mock.Anything, int64(2)).Return(&movies[1], nil).Once()

		out := f.run(t)
		assert.Contains(t, out, "'Heat' deleted.")
	})

	t.Run("Not Found", func(t *testing.T) {
		f := newMenuFixture("3\n42\n0\n")
		f.movies.On("ListAllMovies", mock.Anything).Return(movies, nil).Once()
		f.movies.On("DeleteMovie", mock.Anything, int64(42)).Return(nil, services.ErrMovieNotFound).Once()

		out := f.run(t)
		assert.Contains(t, out, "Movie not found.")
	})

	t.Run("Nothing To Delete", func(t *testing.T) {
		f := newMenuFixture("3\n0\n")
		f.movies.On("ListAllMovies", mock.Anything).Return([]models.Movie{}, nil).Once()

		out := f.run(t)
		assert.Contains(t, out, "No movies found.")
	})
}

func TestMenu_DeleteUser(t *testing.T) {
	f := newMenuFixture("7\n1\n0\n")
	users := []models.User{{ID: 1, Username: "ada"}}
	f.users.On("ListUsers", mock.Anything).Return(users, nil).Once()
	f.users.On("DeleteUser", mock.Anything, int64(1)).Return(&users[0], nil).Once()

	out := f.run(t)
	assert.Contains(t, out, "'ada' deleted.")
}

func TestMenu_ListGenres(t *testing.T) {
	f := newMenuFixture("4\n0\n")
	f.movies.On("ListGenres", mock.Anything).Return([]models.Genre{{ID: 1, Name: "Sci-Fi"}}, nil).Once()

	out := f.run(t)
	assert.Contains(t, out, "Sci-Fi")
	assert.Contains(t, out, "Genre")
}

func TestMenu_AddReview(t *testing.T) {
	users := []models.User{{ID: 1, Username: "ada"}}
	movies := []models.Movie{{ID: 7, Title: "Dune"}}

	t.Run("Created", func(t *testing.T) {
		f := newMenuFixture("8\n1\n1\n6\n5\nExcellent\n0\n")
		f.users.On("ListUsers", mock.Anything).Return(users, nil).Once()
		f.movies.On("ListAllMovies", mock.Anything).Return(movies, nil).Once()
		f.reviews.On("FindReview", mock.Anything, int64(1), int64(7)).Return(nil, nil).Once()
		f.reviews.On("AddReview", mock.Anything, models.ReviewCreatePayload{
			UserID:  1,
			MovieID: 7,
			Rating:  5,
			Comment: strPtr("Excellent"),
		}).Return(&models.Review{ID: 1, UserID: 1, MovieID: 7, Rating: 5}, nil).Once()

		out := f.run(t)
		assert.Contains(t, out, "Value must be ≤ 5")
		assert.Contains(t, out, "ada rated 'Dune' 5/5.")
	})

	t.Run("Already Reviewed", func(t *testing.T) {
		f := newMenuFixture("8\n1\n1\n0\n")
		f.users.On("ListUsers", mock.Anything).Return(users, nil).Once()
		f.movies.On("ListAllMovies", mock.Anything).Return(movies, nil).Once()
		f.reviews.On("FindReview", mock.Anything, int64(1), int64(7)).Return(&models.Review{ID: 1, Rating: 4}, nil).Once()

		out := f.run(t)
		assert.Contains(t, out, "Already reviewed this movie.")
		f.reviews.AssertNotCalled(t, "AddReview", mock.Anything, mock.Anything)
	})

	t.Run("Skip User", func(t *testing.T) {
		f := newMenuFixture("8\n0\n0\n")
		f.users.On("ListUsers", mock.Anything).Return(users, nil).Once()

		out := f.run(t)
		assert.Contains(t, out, "0. Skip")
		f.movies.AssertNotCalled(t, "ListAllMovies", mock.Anything)
	})

	t.Run("Service Error", func(t *testing.T) {
		f := newMenuFixture("8\n1\n1\n3\n\n0\n")
		f.users.On("ListUsers", mock.Anything).Return(users, nil).Once()
		f.movies.On("ListAllMovies", mock.Anything).Return(movies, nil).Once()
		f.reviews.On("FindReview", mock.Anything, int64(1), int64(7)).Return(nil, nil).Once()
		f.reviews.On("AddReview", mock.Anything, mock.Anything).Return(nil, errors.New("disk I/O error")).Once()

		out := f.run(t)
		assert.Contains(t, out, "Error: disk I/O error")
	})
}

func TestMenu_ListReviews(t *testing.T) {
	f := newMenuFixture("9\n0\n")
	created := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	f.reviews.On("ListReviews", mock.Anything).Return([]models.ReviewListing{
		{ID: 1, Username: "ada", MovieTitle: "Dune", Rating: 5, Comment: strPtr("Excellent"), CreatedAt: created},
		{ID: 2, Username: "bob", MovieTitle: "Dune", Rating: 3, CreatedAt: created},
	}, nil).Once()

	out := f.run(t)
	assert.Contains(t, out, "Excellent")
	assert.Contains(t, out, "2024-03-01 12:30:00")
	assert.Contains(t, out, "| - ")
}

func TestMenu_CancelledContext(t *testing.T) {
	f := newMenuFixture("0\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.menu.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, Stopped, f.menu.State())
}

func TestDescribeError(t *testing.T) {
	assert.Equal(t, "Email already exists.", describeError(services.ErrEmailExists))
	assert.Equal(t, "User not found.", describeError(services.ErrUserNotFound))
	assert.Equal(t, "Rating must be between 1 and 5.", describeError(services.ErrInvalidRating))
	assert.Equal(t, "Invalid input: username: maximum is 80.",
		describeError(fmt.Errorf("%w: username: maximum is 80", shared.ErrInvalidInput)))
	assert.Equal(t, "Already exists: UNIQUE constraint failed: genres.name.",
		describeError(fmt.Errorf("%w: UNIQUE constraint failed: genres.name", shared.ErrDuplicateEntity)))
}

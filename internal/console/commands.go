// filepath: internal/console/commands.go
package console

import (
	"context"
	"fmt"

	"watchlist/internal/models"
	"watchlist/internal/services"
)

// ---------------- Movie Commands ---------------- //

func (m *Menu) addMovie(ctx context.Context) error {
	title, err := m.prompt.PromptNonEmpty("Movie title: ", models.MaxTitleLen)
	if err != nil {
		return err
	}
	genreName, err := m.prompt.PromptNonEmpty("Genre: ", models.MaxGenreNameLen)
	if err != nil {
		return err
	}

	movie, err := m.movies.AddMovie(ctx, models.MovieCreatePayload{Title: title, GenreName: genreName})
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "'%s' added under genre '%s'.\n", movie.Title, genreName)
	return nil
}

func (m *Menu) listMovies(ctx context.Context) error {
	movies, err := m.movies.ListMovies(ctx)
	if err != nil {
		return err
	}
	if len(movies) == 0 {
		fmt.Fprintln(m.out, "No movies found.")
		return nil
	}

	rows := make([][]string, 0, len(movies))
	for _, mv := range movies {
		rows = append(rows, []string{idCell(mv.ID), mv.Title, optionalCell(mv.GenreName)})
	}
	renderTable(m.out, []string{"ID", "Title", "Genre"}, rows)
	return nil
}

func (m *Menu) deleteMovie(ctx context.Context) error {
	movies, err := m.movies.ListAllMovies(ctx)
	if err != nil {
		return err
	}
	if len(movies) == 0 {
		fmt.Fprintln(m.out, "No movies found.")
		return nil
	}

	rows := make([][]string, 0, len(movies))
	for _, mv := range movies {
		rows = append(rows, []string{idCell(mv.ID), mv.Title})
	}
	renderTable(m.out, []string{"ID", "Title"}, rows)

	id, err := m.prompt.PromptInt("Enter movie ID to delete: ")
	if err != nil {
		return err
	}
	movie, err := m.movies.DeleteMovie(ctx, int64(id))
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "'%s' deleted.\n", movie.Title)
	return nil
}

func (m *Menu) listGenres(ctx context.Context) error {
	genres, err := m.movies.ListGenres(ctx)
	if err != nil {
		return err
	}
	if len(genres) == 0 {
		fmt.Fprintln(m.out, "No genres found.")
		return nil
	}

	rows := make([][]string, 0, len(genres))
	for _, g := range genres {
		rows = append(rows, []string{idCell(g.ID), g.Name})
	}
	renderTable(m.out, []string{"ID", "Genre"}, rows)
	return nil
}

// ---------------- User Commands ---------------- //

func (m *Menu) addUser(ctx context.Context) error {
	username, err := m.prompt.PromptNonEmpty("Username: ", models.MaxUsernameLen)
	if err != nil {
		return err
	}
	email, err := m.prompt.PromptOptionalEmail("Email (optional): ", models.MaxEmailLen)
	if err != nil {
		return err
	}

	user, err := m.users.AddUser(ctx, models.UserCreatePayload{Username: username, Email: email})
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "User '%s' added.\n", user.Username)
	return nil
}

func (m *Menu) listUsers(ctx context.Context) error {
	users, err := m.users.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(m.out, "No users found.")
		return nil
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{idCell(u.ID), u.Username, optionalCell(u.Email)})
	}
	renderTable(m.out, []string{"ID", "Username", "Email"}, rows)
	return nil
}

func (m *Menu) deleteUser(ctx context.Context) error {
	users, err := m.users.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(m.out, "No users found.")
		return nil
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{idCell(u.ID), u.Username})
	}
	renderTable(m.out, []string{"ID", "Username"}, rows)

	id, err := m.prompt.PromptInt("Enter user ID to delete: ")
	if err != nil {
		return err
	}
	user, err := m.users.DeleteUser(ctx, int64(id))
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "'%s' deleted.\n", user.Username)
	return nil
}

// ---------------- Review Commands ---------------- //

func (m *Menu) addReview(ctx context.Context) error {
	users, err := m.users.ListUsers(ctx)
	if err != nil {
		return err
	}
	userLabels := make([]string, 0, len(users))
	for _, u := range users {
		userLabels = append(userLabels, fmt.Sprintf("%s (id=%d)", u.Username, u.ID))
	}
	ui, ok, err := m.prompt.ChooseFromList(userLabels)
	if err != nil || !ok {
		return err
	}
	user := users[ui]

	movies, err := m.movies.ListAllMovies(ctx)
	if err != nil {
		return err
	}
	movieLabels := make([]string, 0, len(movies))
	for _, mv := range movies {
		movieLabels = append(movieLabels, fmt.Sprintf("%s (id=%d)", mv.Title, mv.ID))
	}
	mi, ok, err := m.prompt.ChooseFromList(movieLabels)
	if err != nil || !ok {
		return err
	}
	movie := movies[mi]

	existing, err := m.reviews.FindReview(ctx, user.ID, movie.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return services.ErrAlreadyReviewed
	}

	rating, err := m.prompt.PromptIntRange(fmt.Sprintf("Rating (%d-%d): ", models.MinRating, models.MaxRating), models.MinRating, models.MaxRating)
	if err != nil {
		return err
	}
	comment, err := m.prompt.PromptOptional("Comment: ", models.MaxCommentLen)
	if err != nil {
		return err
	}

	_, err = m.reviews.AddReview(ctx, models.ReviewCreatePayload{
		UserID:  user.ID,
		MovieID: movie.ID,
		Rating:  rating,
		Comment: comment,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "%s rated '%s' %d/%d.\n", user.Username, movie.Title, rating, models.MaxRating)
	return nil
}

func (m *Menu) listReviews(ctx context.Context) error {
	reviews, err := m.reviews.ListReviews(ctx)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		fmt.Fprintln(m.out, "No reviews found.")
		return nil
	}

	rows := make([][]string, 0, len(reviews))
	for _, r := range reviews {
		rows = append(rows, []string{
			idCell(r.ID),
			r.Username,
			r.MovieTitle,
			fmt.Sprintf("%d", r.Rating),
			optionalCell(r.Comment),
			r.CreatedAt.Format(createdLayout),
		})
	}
	renderTable(m.out, []string{"ID", "User", "Movie", "Rating", "Comment", "Created"}, rows)
	return nil
}

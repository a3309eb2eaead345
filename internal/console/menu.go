// filepath: internal/console/menu.go
// Package console implements the interactive menu of the watchlist.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"watchlist/internal/logging"
	"watchlist/internal/models"
	"watchlist/internal/services"
	"watchlist/internal/shared"
)

// State is the position of the menu loop.
type State int

const (
	AwaitingChoice State = iota
	ExecutingCommand
	Stopped
)

func (s State) String() string {
	switch s {
	case AwaitingChoice:
		return "AwaitingChoice"
	case ExecutingCommand:
		return "ExecutingCommand"
	case Stopped:
		return "Stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

const exitChoice = "0"

type command struct {
	label string
	run   func(ctx context.Context) error
}

// Menu dispatches numbered choices to commands until the exit choice or the
// end of input.
type Menu struct {
	prompt  *Prompter
	out     io.Writer
	movies  services.MovieService
	users   services.UserService
	reviews services.ReviewService

	state    State
	order    []string
	commands map[string]command
}

func NewMenu(in io.Reader, out io.Writer, movies services.MovieService, users services.UserService, reviews services.ReviewService) *Menu {
	m := &Menu{
		prompt:  NewPrompter(in, out),
		out:     out,
		movies:  movies,
		users:   users,
		reviews: reviews,
		state:   AwaitingChoice,
	}
	m.register("1", "Add movie", m.addMovie)
	m.register("2", "List movies", m.listMovies)
	m.register("3", "Delete movie", m.deleteMovie)
	m.register("4", "List genres", m.listGenres)
	m.register("5", "Add user", m.addUser)
	m.register("6", "List users", m.listUsers)
	m.register("7", "Delete user", m.deleteUser)
	m.register("8", "Add review", m.addReview)
	m.register("9", "List reviews", m.listReviews)
	return m
}

func (m *Menu) register(choice, label string, run func(ctx context.Context) error) {
	if m.commands == nil {
		m.commands = make(map[string]command)
	}
	m.order = append(m.order, choice)
	m.commands[choice] = command{label: label, run: run}
}

// State reports where the loop currently is.
func (m *Menu) State() State { return m.state }

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "--- Movie Watchlist CLI ---")
	for _, choice := range m.order {
		fmt.Fprintf(m.out, "%s. %s\n", choice, m.commands[choice].label)
	}
	fmt.Fprintf(m.out, "%s. Exit\n", exitChoice)
}

// Run loops until the user exits, the input ends or ctx is cancelled.
// Command failures are reported and never end the loop.
func (m *Menu) Run(ctx context.Context) error {
	for m.state != Stopped {
		if err := ctx.Err(); err != nil {
			m.state = Stopped
			return err
		}

		m.printMenu()
		choice, err := m.prompt.ReadLine("Choose an option: ")
		if err != nil {
			logging.Log.Debugf("Menu: input closed, stopping: %v", err)
			m.state = Stopped
			break
		}
		if choice == exitChoice {
			fmt.Fprintln(m.out, "See you on the next one buddy!")
			m.state = Stopped
			break
		}

		cmd, ok := m.commands[choice]
		if !ok {
			fmt.Fprintln(m.out, "Invalid option. Try again.")
			continue
		}
		m.execute(ctx, cmd)
	}
	return nil
}

func (m *Menu) execute(ctx context.Context, cmd command) {
	m.state = ExecutingCommand
	logging.Log.Debugf("Menu: executing '%s'", cmd.label)

	err := cmd.run(ctx)
	switch {
	case err == nil:
		m.state = AwaitingChoice
	case errors.Is(err, shared.ErrInputClosed):
		logging.Log.Debugf("Menu: input closed during '%s'", cmd.label)
		m.state = Stopped
	default:
		fmt.Fprintln(m.out, describeError(err))
		logging.Log.WithError(err).Warnf("Menu: command '%s' failed", cmd.label)
		m.state = AwaitingChoice
	}
}

// describeError turns a command failure into the line shown to the user.
func describeError(err error) string {
	switch {
	case errors.Is(err, services.ErrMovieExists):
		return "This movie already exists."
	case errors.Is(err, services.ErrUsernameExists):
		return "Username already exists."
	case errors.Is(err, services.ErrEmailExists):
		return "Email already exists."
	case errors.Is(err, services.ErrAlreadyReviewed):
		return "Already reviewed this movie."
	case errors.Is(err, services.ErrMovieNotFound):
		return "Movie not found."
	case errors.Is(err, services.ErrUserNotFound):
		return "User not found."
	case errors.Is(err, services.ErrInvalidRating):
		return fmt.Sprintf("Rating must be between %d and %d.", models.MinRating, models.MaxRating)
	case errors.Is(err, shared.ErrDuplicateEntity),
		errors.Is(err, shared.ErrNotFound),
		errors.Is(err, shared.ErrInvalidInput),
		errors.Is(err, shared.ErrConstraintViolation):
		// The message already starts with its kind.
		return sentence(err.Error())
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func sentence(msg string) string {
	r, size := utf8.DecodeRuneInString(msg)
	if size == 0 {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:] + "."
}

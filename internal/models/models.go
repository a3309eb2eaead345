// filepath: internal/models/models.go
// Package models contains the core data structures for the application.
package models

import "time"

// Genre is a named category attachable to zero or more movies.
type Genre struct {
	ID   int64
	Name string
}

// Movie is a titled work, optionally categorized by a genre.
type Movie struct {
	ID        int64
	Title     string
	GenreID   *int64 // nil when the movie has no genre
	CreatedAt time.Time
}

// User is a registered viewer.
type User struct {
	ID        int64
	Username  string
	Email     *string
	CreatedAt time.Time
}

// Review links one user to one movie with a rating from 1 to 5.
type Review struct {
	ID        int64
	UserID    int64
	MovieID   int64
	Rating    int
	Comment   *string
	CreatedAt time.Time
}

// MovieListing is a movie row joined with its genre name.
type MovieListing struct {
	ID        int64
	Title     string
	GenreName *string
}

// ReviewListing is a review row joined with its user and movie.
type ReviewListing struct {
	ID         int64
	Username   string
	MovieTitle string
	Rating     int
	Comment    *string
	CreatedAt  time.Time
}

// Rating bounds enforced by the reviews table.
const (
	MinRating = 1
	MaxRating = 5
)

// Length limits in characters, matched by CHECK constraints in the schema.
const (
	MaxGenreNameLen = 80
	MaxTitleLen     = 200
	MaxUsernameLen  = 80
	MaxEmailLen     = 255
	MaxCommentLen   = 500
)

// UserCreatePayload is the validated input for creating a user.
type UserCreatePayload struct {
	Username string  `validate:"required,max=80"`
	Email    *string `validate:"omitempty,email,max=255"`
}

// ReviewCreatePayload is the validated input for creating a review.
type ReviewCreatePayload struct {
	UserID  int64   `validate:"required,gt=0"`
	MovieID int64   `validate:"required,gt=0"`
	Rating  int     `validate:"min=1,max=5"`
	Comment *string `validate:"omitempty,max=500"`
}

// MovieCreatePayload is the validated input for adding a movie.
type MovieCreatePayload struct {
	Title     string `validate:"required,max=200"`
	GenreName string `validate:"required,max=80"`
}

// StoreStats counts the rows of every table and the size of the store file.
type StoreStats struct {
	Genres    int
	Movies    int
	Users     int
	Reviews   int
	SizeBytes int64
}

// HousekeepingReport summarizes the results of a housekeeping run.
type HousekeepingReport struct {
	GenresDeleted   int
	Genres          []string
	SpaceFreedBytes int64
	DryRun          bool
	Stats           StoreStats // store contents once the run is done
	Message         string
}

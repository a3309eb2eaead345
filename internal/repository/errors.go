package repository

import (
	"errors"
	"fmt"
	"strings"

	"watchlist/internal/shared"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// translateError maps SQLite constraint failures onto the shared error kinds.
// Other errors are returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		switch {
		case code == sqlite3.SQLITE_CONSTRAINT_UNIQUE, code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %s", shared.ErrDuplicateEntity, msg)
		case code&0xff != sqlite3.SQLITE_CONSTRAINT:
			return err
		}
	}

	// Plain SQLITE_CONSTRAINT, or a driver that only exposes the message.
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %s", shared.ErrDuplicateEntity, msg)
	case strings.Contains(msg, "constraint failed"):
		return fmt.Errorf("%w: %s", shared.ErrConstraintViolation, msg)
	}
	if sqliteErr != nil {
		return fmt.Errorf("%w: %s", shared.ErrConstraintViolation, msg)
	}
	return err
}

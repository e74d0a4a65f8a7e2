package repo

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateID is returned when an insert collides with an existing
	// primary key.
	ErrDuplicateID = errors.New("duplicate id")
)

// translate maps driver-level constraint violations onto the package error
// kinds so callers can match with errors.Is instead of message text.
func translate(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %v", ErrDuplicateID, err)
	}
	return err
}

// Package store persists the workout history
package store

import (
	"github.com/ayoisaiah/sculpt/internal/apperr"
	"github.com/ayoisaiah/sculpt/internal/workout"
)

// Supported storage drivers.
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)

// ErrUnknownDriver is returned by Open for an unsupported driver name.
var ErrUnknownDriver = &apperr.Error{
	Message: "unknown storage driver %q: expected bolt or sqlite",
}

// DB is the database storage interface.
type DB interface {
	// LoadSessions returns every saved session, newest first
	LoadSessions() ([]*workout.Session, error)
	// SaveSessions replaces the saved history with sessions, which must be
	// ordered newest first
	SaveSessions(sessions []*workout.Session) error
	// Close ends the database connection
	Close() error
}

// Open connects to the database at path using the named driver.
func Open(driver, path string) (DB, error) {
	var (
		db  DB
		err error
	)

	switch driver {
	case DriverBolt, "":
		db, err = NewBoltClient(path)
	case DriverSQLite:
		db, err = NewSQLiteClient(path)
	default:
		return nil, ErrUnknownDriver.Fmt(driver)
	}

	if err != nil {
		return nil, err
	}

	return db, nil
}

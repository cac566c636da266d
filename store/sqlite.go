package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ayoisaiah/sculpt/internal/workout"
)

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		seq INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS entries (
		session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		muscle_group TEXT NOT NULL DEFAULT '',
		sets INTEGER NOT NULL DEFAULT 0,
		reps INTEGER NOT NULL DEFAULT 0,
		weight REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (session_id, position)
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_seq ON sessions(seq);
`

// SQLiteClient stores the history in a SQLite database.
type SQLiteClient struct {
	db *sql.DB
}

// NewSQLiteClient opens (or creates) the SQLite database at dbPath.
func NewSQLiteClient(dbPath string) (*SQLiteClient, error) {
	db, err := sql.Open(
		"sqlite",
		dbPath+"?_pragma=busy_timeout(1000)&_pragma=foreign_keys(1)",
	)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	c, err := newSQLiteFromDB(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return c, nil
}

// newSQLiteFromDB creates a client from an existing connection and makes sure
// the schema exists.
func newSQLiteFromDB(db *sql.DB) (*SQLiteClient, error) {
	if _, err := db.Exec(sqliteSchema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteClient{db: db}, nil
}

// Close closes the underlying database connection.
func (c *SQLiteClient) Close() error {
	return c.db.Close()
}

// LoadSessions returns the saved sessions, newest first.
func (c *SQLiteClient) LoadSessions() ([]*workout.Session, error) {
	rows, err := c.db.Query(
		`SELECT id, created_at FROM sessions ORDER BY seq DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*workout.Session

	byID := make(map[string]*workout.Session)

	for rows.Next() {
		var (
			id        string
			createdAt string
		)

		if err := rows.Scan(&id, &createdAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}

		t, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			slog.Warn(
				"skipping session record",
				slog.String("session_id", id),
				slog.Any("error", err),
			)

			continue
		}

		sess := &workout.Session{
			ID:        id,
			CreatedAt: t,
			Entries:   []workout.Exercise{},
		}

		sessions = append(sessions, sess)
		byID[id] = sess
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	entries, err := c.db.Query(`
		SELECT session_id, name, muscle_group, sets, reps, weight
		FROM entries ORDER BY session_id, position`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer entries.Close()

	for entries.Next() {
		var (
			id string
			e  workout.Exercise
		)

		err := entries.Scan(&id, &e.Name, &e.MuscleGroup, &e.Sets, &e.Reps, &e.Weight)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}

		if sess, ok := byID[id]; ok {
			sess.Append(e)
		}
	}

	return sessions, entries.Err()
}

// SaveSessions replaces the stored history in a single transaction.
func (c *SQLiteClient) SaveSessions(sessions []*workout.Session) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	err = saveSessions(tx, sessions)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func saveSessions(tx *sql.Tx, sessions []*workout.Session) error {
	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM sessions`); err != nil {
		return err
	}

	for i, sess := range sessions {
		_, err := tx.Exec(
			`INSERT INTO sessions (id, seq, created_at) VALUES (?, ?, ?)`,
			sess.ID,
			len(sessions)-i,
			sess.CreatedAt.Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("insert session %s: %w", sess.ID, err)
		}

		for pos, e := range sess.Entries {
			_, err := tx.Exec(`
				INSERT INTO entries
					(session_id, position, name, muscle_group, sets, reps, weight)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				sess.ID, pos, e.Name, e.MuscleGroup, e.Sets, e.Reps, e.Weight,
			)
			if err != nil {
				return fmt.Errorf("insert entry %d of %s: %w", pos, sess.ID, err)
			}
		}
	}

	return nil
}

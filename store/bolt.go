package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/sculpt/internal/apperr"
	"github.com/ayoisaiah/sculpt/internal/workout"
)

const sessionBucket = "sessions"

var (
	// ErrSculptRunning is returned when another process holds the database
	// lock.
	ErrSculptRunning = &apperr.Error{
		Message: "is sculpt already running? Only one instance can use the database at a time",
	}

	errDecodeSession = &apperr.Error{
		Message: "session record %d is corrupt",
	}
)

// BoltClient is a BoltDB database client.
type BoltClient struct {
	*bolt.DB
}

// LoadSessions returns the saved sessions, newest first. Records that cannot
// be decoded are logged and skipped.
func (c *BoltClient) LoadSessions() ([]*workout.Session, error) {
	var sessions []*workout.Session

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))
		if b == nil {
			return nil
		}

		cur := b.Cursor()

		for k, v := cur.Last(); k != nil; k, v = cur.Prev() {
			var sess workout.Session

			err := json.Unmarshal(v, &sess)
			if err != nil {
				slog.Warn(
					"skipping session record",
					slog.Any("error", errDecodeSession.Fmt(binary.BigEndian.Uint64(k)).Wrap(err)),
				)

				continue
			}

			sessions = append(sessions, &sess)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// SaveSessions rewrites the sessions bucket in a single transaction. Keys are
// assigned oldest first so that a reverse scan yields the newest session
// first.
func (c *BoltClient) SaveSessions(sessions []*workout.Session) error {
	return c.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(sessionBucket))
		if err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}

		b, err := tx.CreateBucket([]byte(sessionBucket))
		if err != nil {
			return err
		}

		for i := len(sessions) - 1; i >= 0; i-- {
			value, err := json.Marshal(sessions[i])
			if err != nil {
				return err
			}

			seq, err := b.NextSequence()
			if err != nil {
				return err
			}

			err = b.Put(sequenceKey(seq), value)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func sequenceKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)

	return key
}

// openBolt creates or opens a database and locks it.
func openBolt(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrSculptRunning
		}

		return nil, err
	}

	return db, nil
}

// NewBoltClient returns a wrapper to a BoltDB connection.
func NewBoltClient(dbPath string) (*BoltClient, error) {
	db, err := openBolt(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(sessionBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltClient{
		db,
	}, nil
}

// Package history keeps the record of completed workout sessions and derives
// statistics from it
package history

import (
	"log/slog"
	"strings"
	"time"

	"github.com/ayoisaiah/sculpt/internal/workout"
)

// Loader reads previously persisted sessions, newest first.
type Loader interface {
	LoadSessions() ([]*workout.Session, error)
}

// Saver persists the complete history, newest first.
type Saver interface {
	SaveSessions(sessions []*workout.Session) error
}

// Store is the ordered list of completed sessions, newest first. It is not
// safe for concurrent use.
type Store struct {
	saver    Saver
	logger   *slog.Logger
	sessions []*workout.Session
}

// Option configures a Store.
type Option func(*Store)

// WithSaver persists the history after every commit.
func WithSaver(s Saver) Option {
	return func(st *Store) {
		st.saver = s
	}
}

// WithLogger sets the logger used to report persistence failures.
func WithLogger(l *slog.Logger) Option {
	return func(st *Store) {
		st.logger = l
	}
}

// WithSessions seeds the store with sessions ordered newest first.
func WithSessions(sessions []*workout.Session) Option {
	return func(st *Store) {
		st.sessions = append(st.sessions, sessions...)
	}
}

// New creates a history store.
func New(opts ...Option) *Store {
	s := &Store{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Open restores the history from l. If it cannot be read the failure is
// logged and an empty history is returned.
func Open(l Loader, opts ...Option) *Store {
	s := New(opts...)

	if l == nil {
		return s
	}

	sessions, err := l.LoadSessions()
	if err != nil {
		s.logger.Warn(
			"unable to restore workout history, starting with an empty one",
			slog.Any("error", err),
		)

		return s
	}

	s.sessions = sessions

	s.logger.Debug("workout history restored", slog.Int("sessions", len(sessions)))

	return s
}

// Commit places a finished session at the front of the history and then
// persists it. A persistence failure is logged but the session stays in
// memory.
func (s *Store) Commit(sess *workout.Session) {
	s.sessions = append([]*workout.Session{sess}, s.sessions...)

	if s.saver == nil {
		return
	}

	err := s.saver.SaveSessions(s.sessions)
	if err != nil {
		s.logger.Error(
			"unable to save workout history",
			slog.String("session_id", sess.ID),
			slog.Any("error", err),
		)

		return
	}

	s.logger.Info(
		"session saved",
		slog.String("session_id", sess.ID),
		slog.Int("entries", sess.Len()),
	)
}

// Sessions returns the sessions newest first. The slice is a copy but the
// sessions are shared.
func (s *Store) Sessions() []*workout.Session {
	out := make([]*workout.Session, len(s.sessions))
	copy(out, s.sessions)

	return out
}

// Between returns the sessions created within [start, end], newest first. A
// zero start or end leaves that side unbounded.
func (s *Store) Between(start, end time.Time) []*workout.Session {
	var out []*workout.Session

	for _, sess := range s.sessions {
		if !start.IsZero() && sess.CreatedAt.Before(start) {
			continue
		}

		if !end.IsZero() && sess.CreatedAt.After(end) {
			continue
		}

		out = append(out, sess)
	}

	return out
}

// TotalSessions returns the number of completed sessions.
func (s *Store) TotalSessions() int {
	return len(s.sessions)
}

// TotalVolumeAllTime returns the summed volume of every completed session.
func (s *Store) TotalVolumeAllTime() float64 {
	var total float64

	for _, sess := range s.sessions {
		total += sess.TotalVolume()
	}

	return total
}

// PersonalRecord returns the highest estimated one-rep max recorded for the
// named exercise, ignoring case. It is 0 if the exercise was never logged.
func (s *Store) PersonalRecord(name string) float64 {
	var best float64

	for _, sess := range s.sessions {
		for _, e := range sess.Entries {
			if !strings.EqualFold(e.Name, name) {
				continue
			}

			if m := e.PerformanceMetric(); m > best {
				best = m
			}
		}
	}

	return best
}

// Logged returns the distinct exercise names in the history in the order
// they were first encountered, newest session first.
func (s *Store) Logged() []string {
	seen := make(map[string]bool)

	var names []string

	for _, sess := range s.sessions {
		for _, e := range sess.Entries {
			key := strings.ToLower(e.Name)
			if seen[key] {
				continue
			}

			seen[key] = true

			names = append(names, e.Name)
		}
	}

	return names
}

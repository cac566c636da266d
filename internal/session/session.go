// Package session manages the workout session that is currently being logged
package session

import (
	"strconv"
	"strings"
	"time"

	"github.com/ayoisaiah/sculpt/internal/apperr"
	"github.com/ayoisaiah/sculpt/internal/clock"
	"github.com/ayoisaiah/sculpt/internal/library"
	"github.com/ayoisaiah/sculpt/internal/workout"
)

// maxWeight bounds accepted weights and rules out +Inf.
const maxWeight = 1e9

var (
	// ErrInvalidInput is returned when a numeric field cannot be accepted. The
	// active session is not modified.
	ErrInvalidInput = &apperr.Error{
		Message: "invalid input",
	}

	// ErrNoExercises is returned when finishing a session without entries.
	ErrNoExercises = &apperr.Error{
		Message: "session cancelled: no exercises added",
	}

	errNotPositive = &apperr.Error{
		Message: "%s must be a positive number, got %q",
	}

	errNoEntry = &apperr.Error{
		Message: "no exercise selected",
	}
)

// Committer receives finished sessions.
type Committer interface {
	Commit(sess *workout.Session)
}

// Builder owns the session that is open for editing. It is not safe for
// concurrent use.
type Builder struct {
	history Committer
	clock   *clock.Clock
	onTick  clock.TickFunc
	now     func() time.Time
	active  *workout.Session
}

// Option configures a Builder.
type Option func(*Builder)

// WithClock reports the elapsed time of each started session to onTick.
func WithClock(c *clock.Clock, onTick clock.TickFunc) Option {
	return func(b *Builder) {
		b.clock = c
		b.onTick = onTick
	}
}

// WithNow sets the time source used to stamp new sessions.
func WithNow(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

// New returns a builder with an empty active session. Finished sessions are
// handed to history.
func New(history Committer, opts ...Option) *Builder {
	b := &Builder{
		history: history,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.clock == nil {
		b.clock = clock.New(clock.WithNow(b.now))
	}

	b.active = workout.NewSession(b.now())

	return b
}

// Start discards the active session and opens a new one. If tmpl is not nil,
// the session is seeded with one zeroed entry per template exercise. The
// clock is restarted.
func (b *Builder) Start(tmpl *library.Template) {
	sess := workout.NewSession(b.now())

	if tmpl != nil {
		for _, entry := range tmpl.Exercises {
			name, muscle := library.ParseEntry(entry)

			sess.Append(workout.Exercise{
				Name:        name,
				MuscleGroup: muscle,
			})
		}
	}

	b.active = sess

	b.clock.Start(sess.CreatedAt, b.onTick)
}

// AddExercise parses user input and appends the exercise to the active
// session. sets and reps must be positive integers and weight a positive
// number. The index of the new entry is returned.
func (b *Builder) AddExercise(entry, sets, reps, weight string) (int, error) {
	s, err := parsePositiveInt(workout.FieldSets, sets)
	if err != nil {
		return -1, err
	}

	r, err := parsePositiveInt(workout.FieldReps, reps)
	if err != nil {
		return -1, err
	}

	w, err := parsePositiveFloat(workout.FieldWeight, weight)
	if err != nil {
		return -1, err
	}

	return b.Add(entry, s, r, w)
}

// Add appends an exercise to the active session. sets, reps and weight must
// all be greater than zero.
func (b *Builder) Add(entry string, sets, reps int, weight float64) (int, error) {
	name, muscle := library.ParseEntry(entry)
	if name == "" {
		return -1, ErrInvalidInput.Wrap(errNoEntry)
	}

	switch {
	case sets <= 0:
		return -1, notPositive(workout.FieldSets, strconv.Itoa(sets))
	case reps <= 0:
		return -1, notPositive(workout.FieldReps, strconv.Itoa(reps))
	case !(weight > 0) || weight > maxWeight:
		return -1, notPositive(
			workout.FieldWeight,
			strconv.FormatFloat(weight, 'f', -1, 64),
		)
	}

	return b.active.Append(workout.Exercise{
		Name:        name,
		MuscleGroup: muscle,
		Sets:        sets,
		Reps:        reps,
		Weight:      weight,
	}), nil
}

// EditField changes one numeric field of the entry at index. A value of zero
// is accepted.
func (b *Builder) EditField(index int, field workout.Field, value string) error {
	err := b.active.Update(index, field, value)
	if err != nil {
		return ErrInvalidInput.Wrap(err)
	}

	return nil
}

// Finish stops the clock and commits the active session, replacing it with a
// new empty one. ErrNoExercises is returned if the session has no entries, in
// which case nothing is committed and the active session is kept.
func (b *Builder) Finish() (*workout.Session, error) {
	b.clock.Stop()

	if b.active.Len() == 0 {
		return nil, ErrNoExercises
	}

	done := b.active

	if b.history != nil {
		b.history.Commit(done)
	}

	b.active = workout.NewSession(b.now())

	return done, nil
}

// Stop halts the clock without touching the active session.
func (b *Builder) Stop() {
	b.clock.Stop()
}

// Active returns the session open for editing.
func (b *Builder) Active() *workout.Session {
	return b.active
}

// Elapsed returns the time since the active session was started, or zero if
// the clock is not running.
func (b *Builder) Elapsed() time.Duration {
	return b.clock.Elapsed()
}

// Validate reports whether value would be accepted by AddExercise for field.
func Validate(field workout.Field, value string) error {
	var err error

	switch field {
	case workout.FieldSets, workout.FieldReps:
		_, err = parsePositiveInt(field, value)
	case workout.FieldWeight:
		_, err = parsePositiveFloat(field, value)
	default:
		err = ErrInvalidInput.Wrap(workout.ErrUnknownField)
	}

	return err
}

func parsePositiveInt(field workout.Field, value string) (int, error) {
	value = strings.TrimSpace(value)

	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, notPositive(field, value)
	}

	return n, nil
}

func parsePositiveFloat(field workout.Field, value string) (float64, error) {
	value = strings.TrimSpace(value)

	f, err := strconv.ParseFloat(value, 64)
	// NaN fails every comparison
	if err != nil || !(f > 0) || f > maxWeight {
		return 0, notPositive(field, value)
	}

	return f, nil
}

func notPositive(field workout.Field, value string) error {
	return ErrInvalidInput.Wrap(errNotPositive.Fmt(field, value))
}

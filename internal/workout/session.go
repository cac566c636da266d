package workout

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Field names an editable numeric field of an exercise.
type Field string

const (
	FieldSets   Field = "sets"
	FieldReps   Field = "reps"
	FieldWeight Field = "weight"
)

// Fields lists the editable fields in display order.
var Fields = []Field{FieldSets, FieldReps, FieldWeight}

var (
	ErrIndexOutOfRange = errors.New("no exercise at the given position")
	ErrUnknownField    = errors.New("unknown field")
	ErrInvalidValue    = errors.New("invalid value")
)

// Session is a bundle of exercises performed together.
type Session struct {
	CreatedAt time.Time  `json:"created_at"`
	ID        string     `json:"id"`
	Entries   []Exercise `json:"entries"`
}

// NewSession returns an empty session created at the specified time.
func NewSession(createdAt time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: createdAt,
		Entries:   []Exercise{},
	}
}

// Len returns the number of entries in the session.
func (s *Session) Len() int {
	return len(s.Entries)
}

// Entry returns the exercise at index i.
func (s *Session) Entry(i int) (Exercise, error) {
	if i < 0 || i >= len(s.Entries) {
		return Exercise{}, ErrIndexOutOfRange
	}

	return s.Entries[i], nil
}

// Append adds an exercise to the end of the session and returns its index.
func (s *Session) Append(e Exercise) int {
	s.Entries = append(s.Entries, e)

	return len(s.Entries) - 1
}

// Update parses value according to field and sets it on the exercise at index
// i. Zero is accepted but negative values are not. The exercise is left
// untouched if parsing fails.
func (s *Session) Update(i int, field Field, value string) error {
	if i < 0 || i >= len(s.Entries) {
		return ErrIndexOutOfRange
	}

	value = strings.TrimSpace(value)

	e := &s.Entries[i]

	switch field {
	case FieldSets, FieldReps:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s expects a whole number of at least 0, got %q", ErrInvalidValue, field, value)
		}

		if field == FieldSets {
			e.Sets = n
		} else {
			e.Reps = n
		}
	case FieldWeight:
		w, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("%w: weight expects a number of at least 0, got %q", ErrInvalidValue, value)
		}

		e.Weight = w
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	return nil
}

// TotalVolume returns the summed volume of every entry in the session.
func (s *Session) TotalVolume() float64 {
	var total float64

	for _, e := range s.Entries {
		total += e.Volume()
	}

	return total
}

package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/sculpt/internal/history"
	"github.com/ayoisaiah/sculpt/internal/library"
	"github.com/ayoisaiah/sculpt/internal/workout"
)

const testCatalog = `
exercises:
  - Squat (Legs)
  - Bench Press (Chest)
  - Deadlift (Back)
templates:
  - name: Push
    exercises:
      - Bench Press (Chest)
      - Shoulder Press (Shoulders)
      - Triceps Extension (Arms)
`

func testLibrary(t *testing.T) *library.Library {
	t.Helper()

	lib, err := library.Parse([]byte(testCatalog))
	require.NoError(t, err)

	return lib
}

func newSession(at time.Time, id string, entries ...workout.Exercise) *workout.Session {
	s := workout.NewSession(at)
	s.ID = id

	for _, e := range entries {
		s.Append(e)
	}

	return s
}

// testHistory holds two sessions: Feb 3 2025 and Feb 5 2025, newest first.
func testHistory() *history.Store {
	h := history.New()

	h.Commit(newSession(
		time.Date(2025, 2, 3, 7, 15, 0, 0, time.UTC),
		"older",
		workout.Exercise{Name: "Bench Press", MuscleGroup: "Chest", Sets: 3, Reps: 5, Weight: 100},
		workout.Exercise{Name: "Squat", MuscleGroup: "Legs", Sets: 5, Reps: 5, Weight: 140},
		workout.Exercise{Name: "Bench Press", MuscleGroup: "Chest", Sets: 2, Reps: 8, Weight: 80},
	))

	h.Commit(newSession(
		time.Date(2025, 2, 5, 19, 45, 30, 0, time.UTC),
		"newer",
		workout.Exercise{Name: "bench press", MuscleGroup: "Chest", Sets: 4, Reps: 10, Weight: 90},
		workout.Exercise{Name: "Farmer Walk", Sets: 2, Reps: 1, Weight: 32.5},
	))

	return h
}

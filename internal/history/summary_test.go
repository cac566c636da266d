package history_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/sculpt/internal/history"
	"github.com/ayoisaiah/sculpt/internal/workout"
)

func TestBestSetFor(t *testing.T) {
	entries := []workout.Exercise{
		{Name: "Squat", Sets: 3, Reps: 5, Weight: 100},
		{Name: "Bench Press", Sets: 5, Reps: 5, Weight: 80},
		{Name: "squat", Sets: 1, Reps: 5, Weight: 300},
		{Name: "Squat", Sets: 5, Reps: 3, Weight: 100},
	}

	best, ok := history.BestSetFor("SQUAT", entries)
	assert.True(t, ok)
	assert.Equal(t, entries[2], best)

	_, ok = history.BestSetFor("Deadlift", entries)
	assert.False(t, ok)
}

func TestBestSetForKeepsFirstOnTie(t *testing.T) {
	entries := []workout.Exercise{
		{Name: "Squat", Sets: 3, Reps: 5, Weight: 100},
		{Name: "Squat", Sets: 5, Reps: 3, Weight: 100},
	}

	best, _ := history.BestSetFor("Squat", entries)

	assert.Equal(t, entries[0], best)
}

func TestGroupedSummary(t *testing.T) {
	s := workout.NewSession(time.Now())

	s.Append(workout.Exercise{Name: "Squat", MuscleGroup: "Legs", Sets: 3, Reps: 5, Weight: 100})
	s.Append(workout.Exercise{Name: "Bench Press", MuscleGroup: "Chest", Sets: 3, Reps: 8, Weight: 60})
	s.Append(workout.Exercise{Name: "Squat", MuscleGroup: "Legs", Sets: 2, Reps: 3, Weight: 120})
	s.Append(workout.Exercise{Name: "Deadlift", MuscleGroup: "Back", Sets: 1, Reps: 5, Weight: 140})
	s.Append(workout.Exercise{Name: "Squat", MuscleGroup: "Legs", Sets: 1, Reps: 10, Weight: 50})

	want := []history.ExerciseSummary{
		{
			Name:        "Squat",
			MuscleGroup: "Legs",
			TotalSets:   6,
			Best:        workout.Exercise{Name: "Squat", MuscleGroup: "Legs", Sets: 3, Reps: 5, Weight: 100},
		},
		{
			Name:        "Bench Press",
			MuscleGroup: "Chest",
			TotalSets:   3,
			Best:        workout.Exercise{Name: "Bench Press", MuscleGroup: "Chest", Sets: 3, Reps: 8, Weight: 60},
		},
		{
			Name:        "Deadlift",
			MuscleGroup: "Back",
			TotalSets:   1,
			Best:        workout.Exercise{Name: "Deadlift", MuscleGroup: "Back", Sets: 1, Reps: 5, Weight: 140},
		},
	}

	if diff := cmp.Diff(want, history.GroupedSummary(s)); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupedSummaryEmpty(t *testing.T) {
	assert.Empty(t, history.GroupedSummary(workout.NewSession(time.Now())))
}

package stats_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/sculpt/internal/testutil"
	"github.com/ayoisaiah/sculpt/internal/workout"
	"github.com/ayoisaiah/sculpt/stats"
)

func TestCompute(t *testing.T) {
	s := stats.Compute(testHistory(), testLibrary(t), stats.Opts{Unit: "lb"})

	assert.Equal(t, 2, s.TotalSessions)
	assert.InDelta(t, 9945, s.TotalVolume, 1e-9)

	require.Len(t, s.Records, 4)

	names := make([]string, len(s.Records))
	for i, r := range s.Records {
		names[i] = r.Name
	}

	assert.Equal(t, []string{"Squat", "Bench Press", "Deadlift", "Farmer Walk"}, names)

	assert.InDelta(t, 140*(1+5.0/30), s.Records[0].OneRepMax, 1e-9)
	assert.InDelta(t, 120.0, s.Records[1].OneRepMax, 1e-9)
	assert.Zero(t, s.Records[2].OneRepMax)
	assert.InDelta(t, 32.5*(1+1.0/30), s.Records[3].OneRepMax, 1e-9)

	assert.True(t, s.Records[2].InCatalog)
	assert.False(t, s.Records[3].InCatalog)
}

func TestComputeWithinRange(t *testing.T) {
	s := stats.Compute(testHistory(), testLibrary(t), stats.Opts{
		StartTime: time.Date(2025, 2, 4, 0, 0, 0, 0, time.UTC),
		Unit:      "kg",
	})

	assert.Equal(t, 1, s.TotalSessions)
	assert.InDelta(t, 3665, s.TotalVolume, 1e-9)
	assert.Zero(t, s.Records[0].OneRepMax)
	assert.InDelta(t, 120.0, s.Records[1].OneRepMax, 1e-9)
}

func TestComputeOrdersOtherExercisesNaturally(t *testing.T) {
	h := testHistory()
	h.Commit(newSession(
		time.Date(2025, 2, 6, 8, 0, 0, 0, time.UTC),
		"rows",
		workout.Exercise{Name: "Cable Row 10", Sets: 3, Reps: 10, Weight: 50},
		workout.Exercise{Name: "Cable Row 2", Sets: 3, Reps: 10, Weight: 40},
		workout.Exercise{Name: "squat", Sets: 1, Reps: 1, Weight: 200},
	))

	s := stats.Compute(h, testLibrary(t), stats.Opts{})

	var others []string

	for _, r := range s.Records {
		if !r.InCatalog {
			others = append(others, r.Name)
		}
	}

	assert.Equal(t, []string{"Cable Row 2", "Cable Row 10", "Farmer Walk"}, others)
	assert.InDelta(t, 200*(1+1.0/30), s.Records[0].OneRepMax, 1e-9)
}

func TestStatsJSON(t *testing.T) {
	s := stats.Compute(testHistory(), testLibrary(t), stats.Opts{Unit: "lb"})

	b, err := s.ToJSON()
	require.NoError(t, err)

	var got map[string]any

	require.NoError(t, json.Unmarshal(b, &got))

	assert.EqualValues(t, 2, got["total_sessions"])
	assert.EqualValues(t, 9945, got["total_volume"])
	assert.Equal(t, "lb", got["unit"])
	assert.Len(t, got["personal_records"], 4)
}

func TestRender(t *testing.T) {
	testutil.PlainOutput(t)

	s := stats.Compute(testHistory(), testLibrary(t), stats.Opts{Unit: "lb"})

	var buf bytes.Buffer

	require.NoError(t, s.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, " Total Sessions: 2\n")
	assert.Contains(t, out, " Total Volume All Time: 9,945.0 lb\n")
	assert.Contains(t, out, " Bench Press: 120.0 lb\n")
	assert.Contains(t, out, " Deadlift: 0.0 lb\n")
}

func TestLookup(t *testing.T) {
	pr := stats.Lookup(testHistory(), "BENCH PRESS", "lb")

	assert.InDelta(t, 120.0, pr.OneRepMax, 1e-9)
	require.NotNil(t, pr.BestSet)
	assert.Equal(t, "bench press", pr.Name)
	assert.InDelta(t, 90, pr.BestSet.Weight, 1e-9)
	assert.Equal(t, 10, pr.BestSet.Reps)

	pr = stats.Lookup(testHistory(), "Deadlift", "lb")

	assert.Equal(t, "Deadlift", pr.Name)
	assert.Zero(t, pr.OneRepMax)
	assert.Nil(t, pr.BestSet)
}

func TestFormatWeight(t *testing.T) {
	cases := map[float64]string{
		0:       "0.0",
		32.5:    "32.5",
		120:     "120.0",
		9945:    "9,945.0",
		1234567: "1,234,567.0",
	}

	for in, want := range cases {
		assert.Equal(t, want, stats.FormatWeight(in), in)
	}
}

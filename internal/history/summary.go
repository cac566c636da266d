package history

import (
	"strings"

	"github.com/ayoisaiah/sculpt/internal/workout"
)

// ExerciseSummary describes every entry of one exercise within a session.
type ExerciseSummary struct {
	Name        string           `json:"name"`
	MuscleGroup string           `json:"muscle_group"`
	Best        workout.Exercise `json:"best_set"`
	TotalSets   int              `json:"total_sets"`
}

// BestSetFor returns the entry with the highest volume among the entries named
// name, ignoring case. On ties the first such entry wins.
func BestSetFor(name string, entries []workout.Exercise) (workout.Exercise, bool) {
	var (
		best  workout.Exercise
		found bool
	)

	for _, e := range entries {
		if !strings.EqualFold(e.Name, name) {
			continue
		}

		if !found || e.Volume() > best.Volume() {
			best = e
			found = true
		}
	}

	return best, found
}

// GroupedSummary groups the entries of a session by exercise name in order of
// first appearance. Names are grouped exactly as they were logged.
func GroupedSummary(sess *workout.Session) []ExerciseSummary {
	var (
		order  []string
		groups = make(map[string][]workout.Exercise)
	)

	for _, e := range sess.Entries {
		if _, ok := groups[e.Name]; !ok {
			order = append(order, e.Name)
		}

		groups[e.Name] = append(groups[e.Name], e)
	}

	summaries := make([]ExerciseSummary, 0, len(order))

	for _, name := range order {
		entries := groups[name]

		var totalSets int
		for _, e := range entries {
			totalSets += e.Sets
		}

		best := entries[0]
		for _, e := range entries[1:] {
			if e.Volume() > best.Volume() {
				best = e
			}
		}

		summaries = append(summaries, ExerciseSummary{
			Name:        name,
			MuscleGroup: best.MuscleGroup,
			TotalSets:   totalSets,
			Best:        best,
		})
	}

	return summaries
}

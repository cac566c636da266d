package stats

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ayoisaiah/sculpt/internal/history"
	"github.com/ayoisaiah/sculpt/internal/ui"
	"github.com/ayoisaiah/sculpt/internal/workout"
)

const separator = "------------------------------------------"

// SessionSummary is the per-session view shown by the history command.
type SessionSummary struct {
	CreatedAt   time.Time                 `json:"created_at"`
	ID          string                    `json:"id"`
	Exercises   []history.ExerciseSummary `json:"exercises"`
	TotalVolume float64                   `json:"total_volume"`
}

// Summarize groups the entries of each session, preserving the order of
// sessions.
func Summarize(sessions []*workout.Session) []SessionSummary {
	out := make([]SessionSummary, 0, len(sessions))

	for _, sess := range sessions {
		out = append(out, SessionSummary{
			ID:          sess.ID,
			CreatedAt:   sess.CreatedAt,
			TotalVolume: sess.TotalVolume(),
			Exercises:   history.GroupedSummary(sess),
		})
	}

	return out
}

// List writes the grouped summary of every session in the order given.
func List(w io.Writer, sessions []*workout.Session, dateFormat, unit string) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, noSessionsMsg)
		return err
	}

	var b strings.Builder

	for _, s := range Summarize(sessions) {
		b.WriteString(separator + "\n")
		b.WriteString(
			ui.Highlight("Session on "+s.CreatedAt.Format(dateFormat)) + "\n",
		)

		for _, e := range s.Exercises {
			fmt.Fprintf(&b, " %d sets x %s\n", e.TotalSets, e.Name)
			fmt.Fprintf(
				&b,
				"  Best set: %s %s x %d reps\n",
				ui.Green(FormatWeight(e.Best.Weight)),
				unit,
				e.Best.Reps,
			)
		}

		fmt.Fprintf(
			&b,
			" Total volume: %s %s\n\n",
			FormatWeight(s.TotalVolume),
			unit,
		)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

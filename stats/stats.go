// Package stats reports workout totals and personal records
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/maruel/natural"

	"github.com/ayoisaiah/sculpt/internal/history"
	"github.com/ayoisaiah/sculpt/internal/library"
	"github.com/ayoisaiah/sculpt/internal/ui"
	"github.com/ayoisaiah/sculpt/internal/workout"
)

const noSessionsMsg = "No sessions found for the specified time range"

// Opts narrows a report to a time range. A zero StartTime or EndTime leaves
// that side unbounded.
type Opts struct {
	StartTime time.Time
	EndTime   time.Time
	Unit      string
}

// Record is the personal record for one exercise.
type Record struct {
	Name      string  `json:"name"`
	OneRepMax float64 `json:"one_rep_max"`
	InCatalog bool    `json:"in_catalog"`
}

// PersonalRecord is the all-time record for one exercise and the highest
// volume set logged for it.
type PersonalRecord struct {
	BestSet   *workout.Exercise `json:"best_set,omitempty"`
	Name      string            `json:"name"`
	Unit      string            `json:"unit"`
	OneRepMax float64           `json:"one_rep_max"`
}

// Stats is the overall report for a time range.
type Stats struct {
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Unit          string    `json:"unit"`
	Records       []Record  `json:"personal_records"`
	TotalSessions int       `json:"total_sessions"`
	TotalVolume   float64   `json:"total_volume"`
}

// Compute builds the report. Every catalog exercise gets a record, even if it
// was never logged, followed by the other logged exercises in natural order.
func Compute(h *history.Store, lib *library.Library, opts Opts) *Stats {
	sub := history.New(
		history.WithSessions(h.Between(opts.StartTime, opts.EndTime)),
	)

	s := &Stats{
		StartTime:     opts.StartTime,
		EndTime:       opts.EndTime,
		Unit:          opts.Unit,
		TotalSessions: sub.TotalSessions(),
		TotalVolume:   sub.TotalVolumeAllTime(),
		Records:       []Record{},
	}

	for _, name := range lib.Names() {
		s.Records = append(s.Records, Record{
			Name:      name,
			OneRepMax: sub.PersonalRecord(name),
			InCatalog: true,
		})
	}

	var others []string

	for _, name := range sub.Logged() {
		if _, ok := lib.Lookup(name); ok {
			continue
		}

		others = append(others, name)
	}

	sort.Slice(others, func(i, j int) bool {
		return natural.Less(others[i], others[j])
	})

	for _, name := range others {
		s.Records = append(s.Records, Record{
			Name:      name,
			OneRepMax: sub.PersonalRecord(name),
		})
	}

	return s
}

// Lookup returns the personal record for name together with the highest
// volume set ever logged for it.
func Lookup(h *history.Store, name, unit string) PersonalRecord {
	pr := PersonalRecord{
		Name:      name,
		Unit:      unit,
		OneRepMax: h.PersonalRecord(name),
	}

	var entries []workout.Exercise
	for _, sess := range h.Sessions() {
		entries = append(entries, sess.Entries...)
	}

	if best, ok := history.BestSetFor(name, entries); ok {
		pr.Name = best.Name
		pr.BestSet = &best
	}

	return pr
}

// ToJSON encodes the report.
func (s *Stats) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

// Render writes the report as text.
func (s *Stats) Render(w io.Writer) error {
	_, err := fmt.Fprintf(
		w,
		"%s\n Total Sessions: %s\n Total Volume All Time: %s %s\n\n%s\n",
		ui.Highlight("Overall Statistics:"),
		ui.Green(s.TotalSessions),
		ui.Green(FormatWeight(s.TotalVolume)),
		s.Unit,
		ui.Highlight("Personal Records (Estimated 1RM):"),
	)
	if err != nil {
		return err
	}

	for _, r := range s.Records {
		_, err = fmt.Fprintf(
			w,
			" %s: %s %s\n",
			r.Name,
			ui.Cyan(FormatWeight(r.OneRepMax)),
			s.Unit,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// FormatWeight prints a weight or volume with thousands separators and one
// decimal place.
func FormatWeight(v float64) string {
	return humanize.FormatFloat("#,###.#", v)
}

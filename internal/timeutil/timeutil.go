// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const secondsInAMinute = 60

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
	Period180Days   Period = "180days"
	Period365Days   Period = "365days"
)

var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
	Period180Days:   -179,
	Period365Days:   -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period180Days,
	Period365Days,
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		int(time.Second-time.Nanosecond),
		t.Location(),
	)
}

// PeriodRange returns the start and end time of a reporting period relative
// to now. The start time of PeriodAllTime is the zero time.
func PeriodRange(period Period, now time.Time) (start, end time.Time) {
	start = RoundToStart(now)

	end = RoundToEnd(now)

	//nolint:exhaustive // other cases covered by default
	switch period {
	case PeriodToday:
		return
	case PeriodYesterday:
		start = RoundToStart(now.AddDate(0, 0, Range[period]))
		end = RoundToEnd(start)

		return
	case PeriodAllTime:
		start = time.Time{}
		return
	default:
		start = RoundToStart(now.AddDate(0, 0, Range[period]))
	}

	return
}

// SecsToMinsAndSecs splits a number of whole seconds into minutes and seconds.
func SecsToMinsAndSecs(secs int64) (mins, rem int64) {
	return secs / secondsInAMinute, secs % secondsInAMinute
}

// FormatElapsed formats a duration as a session clock, e.g. "12:05". Minutes
// are not capped, so a 90 minute session reads "90:00".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	m, s := SecsToMinsAndSecs(int64(d / time.Second))

	return fmt.Sprintf("%d:%02d", m, s)
}

// FromStr parses an absolute or relative date such as "2025-03-01" or
// "3 days ago". Ambiguous dates resolve to the past relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime:         now,
		PreferredDateSource: dateparser.Past,
	}

	dt, err := dateparser.Parse(cfg, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}

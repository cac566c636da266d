package config

import (
	"slices"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/sculpt/internal/timeutil"
)

// FilterConfig restricts reports to sessions within a time range.
type FilterConfig struct {
	StartTime time.Time
	EndTime   time.Time
	Period    timeutil.Period
}

// Filter reads the --period, --start and --end flags. Explicit dates take
// precedence over the period. now anchors relative values.
func Filter(ctx *cli.Context, now time.Time) (*FilterConfig, error) {
	f := &FilterConfig{
		Period: timeutil.Period(strings.TrimSpace(ctx.String("period"))),
	}

	start := strings.TrimSpace(ctx.String("start"))
	end := strings.TrimSpace(ctx.String("end"))

	if start == "" && end == "" {
		if f.Period == "" {
			f.Period = timeutil.PeriodAllTime
		}

		if !slices.Contains(timeutil.PeriodCollection, f.Period) {
			var periods []string
			for _, p := range timeutil.PeriodCollection {
				periods = append(periods, string(p))
			}

			return nil, errInvalidPeriod.Fmt(strings.Join(periods, ", "))
		}

		f.StartTime, f.EndTime = timeutil.PeriodRange(f.Period, now)

		return f, nil
	}

	f.Period = ""

	if start != "" {
		t, err := timeutil.FromStr(start, now)
		if err != nil {
			return nil, errParsingDate.Fmt("start", start).Wrap(err)
		}

		f.StartTime = timeutil.RoundToStart(t)
	}

	f.EndTime = timeutil.RoundToEnd(now)

	if end != "" {
		t, err := timeutil.FromStr(end, now)
		if err != nil {
			return nil, errParsingDate.Fmt("end", end).Wrap(err)
		}

		f.EndTime = timeutil.RoundToEnd(t)
	}

	if !f.StartTime.IsZero() && f.EndTime.Before(f.StartTime) {
		return nil, errInvalidDateRange
	}

	return f, nil
}

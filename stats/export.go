package stats

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ayoisaiah/sculpt/internal/workout"
)

const (
	historySheet = "History"
	recordsSheet = "Records"
)

// Export writes one spreadsheet row per logged exercise, newest session first,
// and a second sheet with the personal records in s.
func Export(path string, sessions []*workout.Session, s *Stats) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", historySheet); err != nil {
		return err
	}

	weightCol := fmt.Sprintf("Weight (%s)", s.Unit)

	err := f.SetSheetRow(historySheet, "A1", &[]any{
		"Date", "Session", "Exercise", "Muscle Group",
		"Sets", "Reps", weightCol, "Volume", "Estimated 1RM",
	})
	if err != nil {
		return err
	}

	row := 2

	for _, sess := range sessions {
		for _, e := range sess.Entries {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}

			err = f.SetSheetRow(historySheet, cell, &[]any{
				sess.CreatedAt.Format("2006-01-02 15:04"),
				sess.ID,
				e.Name,
				e.MuscleGroup,
				e.Sets,
				e.Reps,
				e.Weight,
				e.Volume(),
				e.OneRepMax(),
			})
			if err != nil {
				return err
			}

			row++
		}
	}

	if _, err := f.NewSheet(recordsSheet); err != nil {
		return err
	}

	err = f.SetSheetRow(recordsSheet, "A1", &[]any{
		"Exercise", fmt.Sprintf("Estimated 1RM (%s)", s.Unit),
	})
	if err != nil {
		return err
	}

	for i, r := range s.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		err = f.SetSheetRow(recordsSheet, cell, &[]any{r.Name, r.OneRepMax})
		if err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ayoisaiah/sculpt/internal/config"
	"github.com/ayoisaiah/sculpt/internal/library"
	"github.com/ayoisaiah/sculpt/internal/ui"
	"github.com/ayoisaiah/sculpt/stats"
)

const noSetsMsg = "No sets logged yet"

func loadLibrary(cfg *config.Config) (*library.Library, error) {
	return library.Load(cfg.Library.Path)
}

// printLibrary prints a table of the catalog followed by the templates.
func printLibrary(w io.Writer, lib *library.Library) error {
	exercises := lib.Exercises()

	tableBody := make([][]string, len(exercises))

	for i, entry := range exercises {
		name, muscle := library.ParseEntry(entry)

		tableBody[i] = []string{
			strconv.Itoa(i + 1),
			name,
			ui.MuscleGroup(muscle),
		}
	}

	tableBody = append([][]string{
		{"#", "EXERCISE", "MUSCLE GROUP"},
	}, tableBody...)

	err := ui.PrintTable(tableBody, w)
	if err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString("\n" + ui.Highlight("Templates:") + "\n")

	templates := lib.Templates()
	if len(templates) == 0 {
		b.WriteString(" None\n")
	}

	for _, t := range templates {
		fmt.Fprintf(&b, " %s: %s\n", ui.Green(t.Name), t.Summary())
	}

	_, err = io.WriteString(w, b.String())

	return err
}

// printRecord prints a personal record and the set it is based on.
func printRecord(w io.Writer, pr stats.PersonalRecord) error {
	var b strings.Builder

	b.WriteString(ui.Highlight(pr.Name) + "\n")

	fmt.Fprintf(
		&b,
		" Estimated 1RM: %s %s\n",
		ui.Cyan(stats.FormatWeight(pr.OneRepMax)),
		pr.Unit,
	)

	if pr.BestSet == nil {
		b.WriteString(" " + noSetsMsg + "\n")
	} else {
		fmt.Fprintf(
			&b,
			" Best set: %s %s x %d reps (%d sets)\n",
			ui.Green(stats.FormatWeight(pr.BestSet.Weight)),
			pr.Unit,
			pr.BestSet.Reps,
			pr.BestSet.Sets,
		)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

package tracker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"

	"github.com/ayoisaiah/sculpt/internal/ui"
	"github.com/ayoisaiah/sculpt/stats"
)

const padding = 2

// rows renders the entries of the active session.
func (t *Tracker) rows() []table.Row {
	sess := t.builder.Active()

	rows := make([]table.Row, 0, sess.Len())

	for i, e := range sess.Entries {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			e.Name,
			ui.MuscleGroup(e.MuscleGroup),
			strconv.Itoa(e.Sets),
			strconv.Itoa(e.Reps),
			stats.FormatWeight(e.Weight),
			stats.FormatWeight(e.Volume()),
		})
	}

	return rows
}

func (t *Tracker) refreshTable() {
	rows := t.rows()

	t.table.SetRows(rows)

	if c := t.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		t.table.SetCursor(len(rows) - 1)
	}
}

func (t *Tracker) headerView() string {
	var s strings.Builder

	s.WriteString(t.style.Title.Render("SCULPT"))
	s.WriteString(t.style.Clock.Render(t.elapsed))

	sess := t.builder.Active()

	s.WriteString(
		t.style.Hint.Render(
			"  started " + sess.CreatedAt.Format(t.opts.DateFormat()),
		),
	)

	return s.String()
}

func (t *Tracker) sessionView() string {
	sess := t.builder.Active()

	if sess.Len() == 0 {
		return t.style.Hint.Render("No exercises yet. Press a to add one.")
	}

	var s strings.Builder

	s.WriteString(t.table.View())
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf(
		"Total volume: %s %s",
		stats.FormatWeight(sess.TotalVolume()),
		t.opts.Display.Unit,
	))

	return s.String()
}

func (t *Tracker) statusView() string {
	if t.err != nil {
		return "\n\n" + t.style.Error.Render(t.err.Error())
	}

	if t.notice != "" {
		return "\n\n" + t.style.Notice.Render(t.notice)
	}

	return ""
}

func (t *Tracker) helpView() string {
	if t.form != nil {
		return "\n\n" + t.help.ShortHelpView([]key.Binding{
			defaultKeymap.esc,
		})
	}

	return "\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.add,
		defaultKeymap.edit,
		defaultKeymap.finish,
		defaultKeymap.newSession,
		defaultKeymap.template,
		defaultKeymap.quit,
	})
}

func (t *Tracker) View() string {
	if t.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(t.headerView())
	s.WriteString("\n\n")
	s.WriteString(t.sessionView())
	s.WriteString(t.statusView())

	if t.form != nil {
		s.WriteString("\n\n" + t.form.View())
	}

	s.WriteString(t.helpView())

	return t.style.Base.Render(s.String())
}

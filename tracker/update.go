package tracker

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/sculpt/internal/session"
	"github.com/ayoisaiah/sculpt/internal/workout"
	"github.com/ayoisaiah/sculpt/stats"
)

const cancelledMsg = "Session cancelled: no exercises added"

// handleForm passes msg to the open form and applies it once completed.
func (t *Tracker) handleForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			return t.quit()
		case key.Matches(keyMsg, defaultKeymap.esc):
			t.closeForm()
			return t, nil
		}
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	switch t.form.State {
	case huh.StateCompleted:
		t.submitForm()
		t.closeForm()
	case huh.StateAborted:
		t.closeForm()
	case huh.StateNormal:
	}

	return t, cmd
}

// finish commits the active session and opens a new one. Notifications run
// in the background.
func (t *Tracker) finish() tea.Cmd {
	done, err := t.builder.Finish()
	if errors.Is(err, session.ErrNoExercises) {
		t.notice = cancelledMsg
		t.elapsed = "0:00"

		return nil
	}

	t.notice = fmt.Sprintf(
		"Session saved: %d exercises, %s %s total volume",
		done.Len(),
		stats.FormatWeight(done.TotalVolume()),
		t.opts.Display.Unit,
	)

	t.startSession(nil)

	return t.notifyCmd(done)
}

func (t *Tracker) notifyCmd(sess *workout.Session) tea.Cmd {
	if t.notify == nil {
		return nil
	}

	return func() tea.Msg {
		return notifiedMsg{err: t.notify(sess)}
	}
}

func (t *Tracker) quit() (tea.Model, tea.Cmd) {
	t.builder.Stop()
	t.quitting = true

	return t, tea.Batch(tea.ClearScreen, tea.Quit)
}

func (t *Tracker) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	slog.Debug(spew.Sdump(msg))

	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return t.quit()

	case key.Matches(msg, defaultKeymap.newSession):
		t.startSession(nil)
		t.notice = "Started a new session"
		t.err = nil

		return t, nil

	case key.Matches(msg, defaultKeymap.template):
		if len(t.library.Templates()) == 0 {
			t.err = errNoTemplates
			return t, nil
		}

		return t, t.openForm(templateView, t.templateForm())

	case key.Matches(msg, defaultKeymap.add):
		return t, t.openForm(addView, t.addForm())

	case key.Matches(msg, defaultKeymap.edit):
		e, err := t.builder.Active().Entry(t.table.Cursor())
		if err != nil {
			t.err = errNothingToEdit
			return t, nil
		}

		return t, t.openForm(editView, t.editForm(e))

	case key.Matches(msg, defaultKeymap.finish):
		t.err = nil
		return t, t.finish()
	}

	var cmd tea.Cmd
	t.table, cmd = t.table.Update(msg)

	return t, cmd
}

func (t *Tracker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen == t.gen.Load() {
			t.elapsed = msg.elapsed
		}

		return t, waitForTick(t.ticks)

	case notifiedMsg:
		if msg.err != nil {
			slog.Warn("finish notification failed", slog.Any("error", msg.err))
		}

		return t, nil

	case formDoneMsg:
		return t, nil

	case tea.WindowSizeMsg:
		t.table.SetWidth(msg.Width - padding*2)
		t.help.Width = msg.Width

		return t, nil
	}

	if t.form != nil {
		return t.handleForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return t.handleKeyPress(msg)
	}

	return t, nil
}

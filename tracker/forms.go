package tracker

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/sculpt/internal/session"
	"github.com/ayoisaiah/sculpt/internal/workout"
)

// formDoneMsg is sent when the open form is submitted or aborted.
type formDoneMsg struct{}

func formDone() tea.Msg {
	return formDoneMsg{}
}

func validate(field workout.Field) func(string) error {
	return func(s string) error {
		return session.Validate(field, s)
	}
}

func (t *Tracker) newForm(fields ...huh.Field) *huh.Form {
	form := huh.NewForm(huh.NewGroup(fields...)).
		WithShowHelp(false).
		WithTheme(huh.ThemeCharm())

	form.SubmitCmd = formDone
	form.CancelCmd = formDone

	return form
}

func (t *Tracker) addForm() *huh.Form {
	t.input = formInput{}

	return t.newForm(
		huh.NewSelect[string]().
			Title("Exercise").
			Options(huh.NewOptions(t.library.Exercises()...)...).
			Value(&t.input.entry),
		huh.NewInput().
			Title("Sets").
			Value(&t.input.sets).
			Validate(validate(workout.FieldSets)),
		huh.NewInput().
			Title("Reps").
			Value(&t.input.reps).
			Validate(validate(workout.FieldReps)),
		huh.NewInput().
			Title(fmt.Sprintf("Weight (%s)", t.opts.Display.Unit)).
			Value(&t.input.weight).
			Validate(validate(workout.FieldWeight)),
	)
}

func (t *Tracker) editForm(e workout.Exercise) *huh.Form {
	t.input = formInput{field: workout.FieldWeight}

	options := make([]huh.Option[workout.Field], 0, len(workout.Fields))
	for _, f := range workout.Fields {
		options = append(options, huh.NewOption(string(f), f))
	}

	return t.newForm(
		huh.NewSelect[workout.Field]().
			Title("Edit " + e.Name).
			Options(options...).
			Value(&t.input.field),
		huh.NewInput().
			Title("New value").
			Value(&t.input.value),
	)
}

func (t *Tracker) templateForm() *huh.Form {
	t.input = formInput{}

	templates := t.library.Templates()

	options := make([]huh.Option[string], 0, len(templates))
	for _, tmpl := range templates {
		options = append(
			options,
			huh.NewOption(tmpl.Name+": "+tmpl.Summary(), tmpl.Name),
		)
	}

	return t.newForm(
		huh.NewSelect[string]().
			Title("Start from template").
			Options(options...).
			Value(&t.input.template),
	)
}

// submitForm applies the values of a completed form to the active session.
func (t *Tracker) submitForm() {
	var err error

	switch t.view {
	case addView:
		_, err = t.builder.AddExercise(
			t.input.entry,
			t.input.sets,
			t.input.reps,
			t.input.weight,
		)
		if err == nil {
			t.notice = "Added " + t.input.entry
		}

	case editView:
		err = t.builder.EditField(t.table.Cursor(), t.input.field, t.input.value)
		if err == nil {
			t.notice = fmt.Sprintf("Updated %s", t.input.field)
		}

	case templateView:
		tmpl, ok := t.library.Template(t.input.template)
		if !ok {
			err = errUnknownTemplate.Fmt(t.input.template)
			break
		}

		t.startSession(&tmpl)
		t.notice = "Started " + tmpl.Name
	}

	t.err = err

	t.refreshTable()
}

// openForm shows form in place of the key help.
func (t *Tracker) openForm(view string, form *huh.Form) tea.Cmd {
	t.view = view
	t.form = form
	t.notice = ""
	t.err = nil

	return form.Init()
}

func (t *Tracker) closeForm() {
	t.view = ""
	t.form = nil
}

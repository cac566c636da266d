package tracker

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/sculpt/internal/clock"
	"github.com/ayoisaiah/sculpt/internal/config"
	"github.com/ayoisaiah/sculpt/internal/history"
	"github.com/ayoisaiah/sculpt/internal/library"
	"github.com/ayoisaiah/sculpt/internal/session"
	"github.com/ayoisaiah/sculpt/internal/workout"
)

func testConfig() *config.Config {
	return &config.Config{
		Display: config.DisplayConfig{Unit: "kg"},
	}
}

type notifications struct {
	sessions []*workout.Session
}

func (n *notifications) notify(sess *workout.Session) error {
	n.sessions = append(n.sessions, sess)
	return nil
}

func newTracker(
	t *testing.T,
	cfg *config.Config,
) (*Tracker, *history.Store, *notifications) {
	t.Helper()

	h := history.New()
	n := &notifications{}

	tr, err := New(
		cfg,
		h,
		library.Default(),
		WithNotifier(n.notify),
		WithClock(clock.New(clock.WithInterval(time.Hour))),
	)
	require.NoError(t, err)

	t.Cleanup(tr.builder.Stop)

	tr.Init()

	return tr, h, n
}

func press(t *testing.T, tr *Tracker, keys string) tea.Cmd {
	t.Helper()

	_, cmd := tr.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})

	return cmd
}

func TestNewRejectsUnknownTemplate(t *testing.T) {
	cfg := testConfig()
	cfg.CLI.Template = "Arms Day"

	_, err := New(cfg, history.New(), library.Default())

	assert.ErrorIs(t, err, errUnknownTemplate)
}

func TestInitSeedsTemplate(t *testing.T) {
	cfg := testConfig()
	cfg.CLI.Template = "Lower Body"

	tr, _, _ := newTracker(t, cfg)

	sess := tr.Active()
	require.Equal(t, 3, sess.Len())
	assert.Equal(t, "Squat", sess.Entries[0].Name)
	assert.Equal(t, "Legs", sess.Entries[0].MuscleGroup)
	assert.Zero(t, sess.Entries[0].Sets)
	assert.Len(t, tr.table.Rows(), 3)
}

func TestTickUpdatesElapsed(t *testing.T) {
	tr, _, _ := newTracker(t, testConfig())

	_, cmd := tr.Update(tickMsg{elapsed: "4:07", gen: tr.gen.Load()})

	assert.Equal(t, "4:07", tr.elapsed)
	assert.NotNil(t, cmd)
	assert.Contains(t, tr.View(), "4:07")
}

func TestStaleTickIsIgnored(t *testing.T) {
	tr, _, _ := newTracker(t, testConfig())

	old := tr.gen.Load()

	tr.clock.Stop()

	select {
	case <-tr.ticks:
	default:
	}

	// a tick from the first session is still queued when a new one starts
	tr.ticks <- tickMsg{elapsed: "12:41", gen: old}

	press(t, tr, "n")

	assert.Greater(t, tr.gen.Load(), old)
	assert.Equal(t, "0:00", tr.elapsed)

	_, cmd := tr.Update(tickMsg{elapsed: "12:41", gen: old})

	assert.NotNil(t, cmd)
	assert.Equal(t, "0:00", tr.elapsed)
	assert.NotContains(t, tr.View(), "12:41")
}

func TestFinishEmptySessionIsCancelled(t *testing.T) {
	tr, h, n := newTracker(t, testConfig())

	cmd := press(t, tr, "f")

	assert.Nil(t, cmd)
	assert.Equal(t, cancelledMsg, tr.notice)
	assert.Zero(t, h.TotalSessions())
	assert.Empty(t, n.sessions)
}

func TestFinishCommitsSession(t *testing.T) {
	tr, h, n := newTracker(t, testConfig())

	_, err := tr.builder.Add("Bench Press (Chest)", 3, 10, 60)
	require.NoError(t, err)

	cmd := press(t, tr, "f")
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, notifiedMsg{}, msg)

	assert.Equal(t, 1, h.TotalSessions())
	assert.InDelta(t, 1800.0, h.TotalVolumeAllTime(), 1e-9)
	require.Len(t, n.sessions, 1)
	assert.Equal(t, "Bench Press", n.sessions[0].Entries[0].Name)

	assert.Zero(t, tr.Active().Len())
	assert.Contains(t, tr.notice, "1,800")
	assert.True(t, tr.clock.Running())
}

func TestAddForm(t *testing.T) {
	tr, _, _ := newTracker(t, testConfig())

	press(t, tr, "a")

	require.NotNil(t, tr.form)
	assert.Equal(t, addView, tr.view)
	assert.Contains(t, tr.View(), "Weight (kg)")

	tr.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, tr.form)
	assert.Zero(t, tr.Active().Len())
}

func TestSubmitAdd(t *testing.T) {
	cases := []struct {
		name  string
		input formInput
		err   error
		len   int
	}{
		{
			name: "valid",
			input: formInput{
				entry:  "Deadlift (Back)",
				sets:   "3",
				reps:   "5",
				weight: "140",
			},
			len: 1,
		},
		{
			name: "zero reps",
			input: formInput{
				entry:  "Deadlift (Back)",
				sets:   "3",
				reps:   "0",
				weight: "140",
			},
			err: session.ErrInvalidInput,
		},
		{
			name: "weight is not a number",
			input: formInput{
				entry:  "Deadlift (Back)",
				sets:   "3",
				reps:   "5",
				weight: "heavy",
			},
			err: session.ErrInvalidInput,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, _, _ := newTracker(t, testConfig())

			tr.view = addView
			tr.input = tc.input
			tr.submitForm()

			if tc.err != nil {
				assert.ErrorIs(t, tr.err, tc.err)
			} else {
				assert.NoError(t, tr.err)
			}

			assert.Equal(t, tc.len, tr.Active().Len())
			assert.Len(t, tr.table.Rows(), tc.len)
		})
	}
}

func TestEditWithoutEntries(t *testing.T) {
	tr, _, _ := newTracker(t, testConfig())

	press(t, tr, "e")

	assert.Nil(t, tr.form)
	assert.ErrorIs(t, tr.err, errNothingToEdit)
}

func TestSubmitEdit(t *testing.T) {
	cfg := testConfig()
	cfg.CLI.Template = "Full Body"

	tr, _, _ := newTracker(t, cfg)

	press(t, tr, "j")
	require.Equal(t, 1, tr.table.Cursor())

	press(t, tr, "e")
	require.NotNil(t, tr.form)
	assert.Equal(t, editView, tr.view)

	tr.input = formInput{field: workout.FieldWeight, value: "82.5"}
	tr.submitForm()
	tr.closeForm()

	require.NoError(t, tr.err)
	assert.InDelta(t, 82.5, tr.Active().Entries[1].Weight, 1e-9)
	assert.Equal(t, "82.5", tr.table.Rows()[1][5])

	tr.view = editView
	tr.input = formInput{field: workout.FieldReps, value: "ten"}
	tr.submitForm()

	assert.ErrorIs(t, tr.err, session.ErrInvalidInput)
	assert.Zero(t, tr.Active().Entries[1].Reps)
}

func TestSubmitTemplate(t *testing.T) {
	tr, _, _ := newTracker(t, testConfig())

	_, err := tr.builder.Add("Squat (Legs)", 5, 5, 100)
	require.NoError(t, err)

	press(t, tr, "t")
	require.NotNil(t, tr.form)

	tr.input = formInput{template: "Upper Body"}
	tr.submitForm()

	require.NoError(t, tr.err)
	require.Equal(t, 3, tr.Active().Len())
	assert.Equal(t, "Incline Chest Press", tr.Active().Entries[0].Name)

	tr.input = formInput{template: "Cardio"}
	tr.submitForm()

	assert.ErrorIs(t, tr.err, errUnknownTemplate)
}

func TestNewSessionDiscardsEntries(t *testing.T) {
	tr, h, _ := newTracker(t, testConfig())

	_, err := tr.builder.Add("Squat (Legs)", 5, 5, 100)
	require.NoError(t, err)

	press(t, tr, "n")

	assert.Zero(t, tr.Active().Len())
	assert.Zero(t, h.TotalSessions())
}

func TestViewShowsUnknownMuscleGroup(t *testing.T) {
	tr, _, _ := newTracker(t, testConfig())

	_, err := tr.builder.Add("Farmer Carry", 2, 40, 30)
	require.NoError(t, err)

	tr.refreshTable()

	view := tr.View()
	assert.Contains(t, view, "Farmer Carry")
	assert.Contains(t, view, "Unknown")
	assert.Contains(t, view, "2,400.0 kg")
}

func TestQuit(t *testing.T) {
	tr, _, _ := newTracker(t, testConfig())

	cmd := press(t, tr, "q")

	assert.NotNil(t, cmd)
	assert.False(t, tr.clock.Running())
	assert.Empty(t, tr.View())
}

func TestNotifierRun(t *testing.T) {
	sess := workout.NewSession(time.Now())
	sess.Append(workout.Exercise{Name: "Squat", Sets: 5, Reps: 5, Weight: 100})

	var (
		title, msg string
		played     bool
	)

	n := &notifier{
		enabled: true,
		sound:   true,
		unit:    "lb",
		notify: func(ti, m, _ string) error {
			title, msg = ti, m
			return nil
		},
		play: func() error {
			played = true
			return errors.New("no audio device")
		},
	}

	err := n.Run(sess)

	assert.ErrorIs(t, err, errChime)
	assert.Equal(t, "Workout saved", title)
	assert.Equal(t, "1 exercises, 2,500.0 lb total volume", msg)
	assert.True(t, played)
}

func TestNotifierDisabled(t *testing.T) {
	n := &notifier{
		notify: func(_, _, _ string) error {
			t.Fatal("notification sent while disabled")
			return nil
		},
		play: func() error {
			t.Fatal("chime played while disabled")
			return nil
		},
	}

	assert.NoError(t, n.Run(workout.NewSession(time.Now())))
}

func TestRunSessionCmd(t *testing.T) {
	assert.NoError(t, runSessionCmd(""))
	assert.NoError(t, runSessionCmd("   "))
	assert.ErrorIs(t, runSessionCmd(`echo "unterminated`), errSessionCmd)
}

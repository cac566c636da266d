// Package tracker runs the interactive workout logger and reports finished
// sessions
package tracker

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/sculpt/internal/clock"
	"github.com/ayoisaiah/sculpt/internal/config"
	"github.com/ayoisaiah/sculpt/internal/history"
	"github.com/ayoisaiah/sculpt/internal/library"
	"github.com/ayoisaiah/sculpt/internal/session"
	"github.com/ayoisaiah/sculpt/internal/workout"
)

const (
	addView      = "add"
	editView     = "edit"
	templateView = "template"
)

type (
	// tickMsg carries the formatted elapsed time of the session that was
	// active when the clock fired.
	tickMsg struct {
		elapsed string
		gen     uint64
	}

	// notifiedMsg is sent once the finish notifications have run.
	notifiedMsg struct {
		err error
	}

	// formInput holds the values bound to the open form.
	formInput struct {
		entry    string
		sets     string
		reps     string
		weight   string
		field    workout.Field
		value    string
		template string
	}
)

// NotifyFunc is called with every session that is committed from the
// tracker. It runs outside the update loop.
type NotifyFunc func(sess *workout.Session) error

// Tracker is the bubbletea model for logging a workout session.
type Tracker struct {
	builder  *session.Builder
	clock    *clock.Clock
	library  *library.Library
	opts     *config.Config
	notify   NotifyFunc
	form     *huh.Form
	ticks    chan tickMsg
	gen      atomic.Uint64
	tmpl     *library.Template
	err      error
	style    Style
	input    formInput
	view     string
	elapsed  string
	notice   string
	help     help.Model
	table    table.Model
	quitting bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithNotifier replaces the notifications run after a session is finished.
func WithNotifier(fn NotifyFunc) Option {
	return func(t *Tracker) {
		t.notify = fn
	}
}

// WithClock replaces the clock that measures the active session.
func WithClock(c *clock.Clock) Option {
	return func(t *Tracker) {
		t.clock = c
	}
}

// New creates a tracker that commits finished sessions to h. If
// cfg.CLI.Template is set, the first session is seeded from that template.
func New(
	cfg *config.Config,
	h *history.Store,
	lib *library.Library,
	opts ...Option,
) (*Tracker, error) {
	t := &Tracker{
		library: lib,
		opts:    cfg,
		ticks:   make(chan tickMsg, 1),
		style:   newStyle(cfg.Display.DarkTheme),
		help:    help.New(),
		elapsed: "0:00",
		clock:   clock.New(),
		notify:  newNotifier(cfg).Run,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.builder = session.New(h, session.WithClock(t.clock, t.onTick))

	if name := cfg.CLI.Template; name != "" {
		tmpl, ok := lib.Template(name)
		if !ok {
			return nil, errUnknownTemplate.Fmt(name)
		}

		t.tmpl = &tmpl
	}

	t.table = newTable(t.style)

	return t, nil
}

// Run starts the tracker and blocks until the user quits.
func Run(cfg *config.Config, h *history.Store, lib *library.Library) error {
	t, err := New(cfg, h, lib)
	if err != nil {
		return err
	}

	defer t.builder.Stop()

	_, err = tea.NewProgram(t).Run()

	return err
}

// onTick is called from the clock goroutine. A tick is dropped if the
// previous one has not been consumed yet.
func (t *Tracker) onTick(elapsed string) {
	select {
	case t.ticks <- tickMsg{elapsed: elapsed, gen: t.gen.Load()}:
	default:
	}
}

// waitForTick blocks until the clock reports the elapsed time.
func waitForTick(ticks <-chan tickMsg) tea.Cmd {
	return func() tea.Msg {
		return <-ticks
	}
}

// Init opens the first session and starts listening for clock ticks.
func (t *Tracker) Init() tea.Cmd {
	t.startSession(t.tmpl)

	return waitForTick(t.ticks)
}

// startSession replaces the active session and refreshes the entries table.
// Ticks from the previous clock that are still buffered or in flight carry
// an older generation and are ignored.
func (t *Tracker) startSession(tmpl *library.Template) {
	t.clock.Stop()
	t.gen.Add(1)

	select {
	case <-t.ticks:
	default:
	}

	t.builder.Start(tmpl)
	t.elapsed = "0:00"
	t.refreshTable()
}

// Active returns the session being logged.
func (t *Tracker) Active() *workout.Session {
	return t.builder.Active()
}

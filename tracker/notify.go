package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/sculpt/internal/config"
	"github.com/ayoisaiah/sculpt/internal/workout"
	"github.com/ayoisaiah/sculpt/stats"
)

const (
	chimeSampleRate = beep.SampleRate(44100)
	chimeNote       = 250 * time.Millisecond
	sessionCmdLimit = time.Minute
)

// chimeFreqs are the notes of the finish chime, played in order.
var chimeFreqs = []float64{660, 880}

// notifier announces finished sessions.
type notifier struct {
	notify     func(title, msg, icon string) error
	play       func() error
	unit       string
	sessionCmd string
	enabled    bool
	sound      bool
}

func newNotifier(cfg *config.Config) *notifier {
	return &notifier{
		enabled:    cfg.Notifications.Enabled,
		sound:      cfg.Notifications.Sound,
		sessionCmd: cfg.Settings.Cmd,
		unit:       cfg.Display.Unit,
		notify:     beeep.Notify,
		play:       playChime,
	}
}

// Run sends a desktop notification, plays the chime and executes the session
// command, depending on what is enabled. Every step runs even if an earlier
// one fails.
func (n *notifier) Run(sess *workout.Session) error {
	var errs []error

	if n.enabled {
		msg := fmt.Sprintf(
			"%d exercises, %s %s total volume",
			sess.Len(),
			stats.FormatWeight(sess.TotalVolume()),
			n.unit,
		)

		err := n.notify("Workout saved", msg, "")
		if err != nil {
			errs = append(errs, err)
		}
	}

	if n.sound {
		err := n.play()
		if err != nil {
			errs = append(errs, errChime.Wrap(err))
		}
	}

	err := runSessionCmd(n.sessionCmd)
	if err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// runSessionCmd executes the specified command.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), sessionCmdLimit)
	defer cancel()

	slog.Debug("running session command", slog.Any("cmd", cmdSlice))

	//nolint:gosec // the command comes from the user's own config
	cmd := exec.CommandContext(ctx, cmdSlice[0], cmdSlice[1:]...)

	return cmd.Run()
}

// playChime plays a short two-note tone and blocks until it ends.
func playChime() error {
	streams := make([]beep.Streamer, 0, len(chimeFreqs)*2)

	for _, freq := range chimeFreqs {
		tone, err := generators.SineTone(chimeSampleRate, freq)
		if err != nil {
			return err
		}

		streams = append(
			streams,
			beep.Take(chimeSampleRate.N(chimeNote), tone),
			beep.Silence(chimeSampleRate.N(chimeNote/4)),
		)
	}

	bufferSize := 10

	err := speaker.Init(
		chimeSampleRate,
		chimeSampleRate.N(time.Second/time.Duration(bufferSize)),
	)
	if err != nil {
		return err
	}

	defer speaker.Close()

	done := make(chan struct{})

	speaker.Play(beep.Seq(append(streams, beep.Callback(func() {
		close(done)
	}))...))

	<-done

	speaker.Clear()

	return nil
}

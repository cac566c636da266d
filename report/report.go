// Package report prints status messages to the terminal
package report

import (
	"errors"
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/sculpt/internal/osutil"
	"github.com/ayoisaiah/sculpt/internal/session"
)

// Info prints an informational message.
func Info(msg string) {
	pterm.Info.Println(msg)
}

// Success prints a confirmation message.
func Success(msg string) {
	pterm.Success.Println(msg)
}

// Error prints err. A cancelled session is reported as a warning.
func Error(err error) {
	if errors.Is(err, session.ErrNoExercises) {
		pterm.Warning.Println(err)
		return
	}

	pterm.Error.Println(err)
}

// ExitCode returns the process exit code for err.
func ExitCode(err error) osutil.ExitCode {
	if err == nil || errors.Is(err, session.ErrNoExercises) {
		return osutil.ExitOK
	}

	return osutil.ExitError
}

// Quit prints err and exits with the matching exit code.
func Quit(err error) {
	Error(err)
	os.Exit(int(ExitCode(err)))
}

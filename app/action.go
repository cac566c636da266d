package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/ayoisaiah/sculpt/internal/apperr"
	"github.com/ayoisaiah/sculpt/internal/config"
	"github.com/ayoisaiah/sculpt/internal/osutil"
	"github.com/ayoisaiah/sculpt/internal/pathutil"
	"github.com/ayoisaiah/sculpt/internal/static"
	"github.com/ayoisaiah/sculpt/internal/ui"
	"github.com/ayoisaiah/sculpt/report"
	"github.com/ayoisaiah/sculpt/stats"
	"github.com/ayoisaiah/sculpt/tracker"
)

const (
	envNoColor       = "NO_COLOR"
	envSculptNoColor = "SCULPT_NO_COLOR"
)

var (
	errExerciseRequired = &apperr.Error{
		Message: "specify the exercise to look up, e.g. sculpt pr \"Bench Press\"",
	}

	errUnknownExercise = &apperr.Error{
		Message: "%q is not in the exercise library and has never been logged",
	}
)

// now is replaced in tests.
var now = time.Now

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// printJSON writes v to stdout as JSON.
func printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(config.Stdout, string(b))

	return err
}

// defaultAction opens the interactive session logger.
func defaultAction(ctx *cli.Context) error {
	ws, err := setup(ctx)
	if err != nil {
		return err
	}

	defer ws.Close()

	return tracker.Run(ws.cfg, ws.history, ws.library)
}

// historyAction prints the sessions logged within the selected period.
func historyAction(ctx *cli.Context) error {
	filter, err := config.Filter(ctx, now())
	if err != nil {
		return err
	}

	ws, err := setup(ctx)
	if err != nil {
		return err
	}

	defer ws.Close()

	sessions := ws.history.Between(filter.StartTime, filter.EndTime)

	if ctx.Bool("json") {
		return printJSON(stats.Summarize(sessions))
	}

	return stats.List(
		config.Stdout,
		sessions,
		ws.cfg.DateFormat(),
		ws.cfg.Display.Unit,
	)
}

// statsAction prints the totals and personal records for the selected
// period.
func statsAction(ctx *cli.Context) error {
	filter, err := config.Filter(ctx, now())
	if err != nil {
		return err
	}

	ws, err := setup(ctx)
	if err != nil {
		return err
	}

	defer ws.Close()

	s := stats.Compute(ws.history, ws.library, stats.Opts{
		StartTime: filter.StartTime,
		EndTime:   filter.EndTime,
		Unit:      ws.cfg.Display.Unit,
	})

	if ctx.Bool("json") {
		b, err := s.ToJSON()
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(config.Stdout, string(b))

		return err
	}

	return s.Render(config.Stdout)
}

// prAction prints the all-time personal record for one exercise.
func prAction(ctx *cli.Context) error {
	name := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if name == "" {
		return errExerciseRequired
	}

	ws, err := setup(ctx)
	if err != nil {
		return err
	}

	defer ws.Close()

	pr := stats.Lookup(ws.history, name, ws.cfg.Display.Unit)

	if pr.BestSet == nil {
		entry, ok := ws.library.Lookup(name)
		if !ok {
			return errUnknownExercise.Fmt(name)
		}

		pr.Name = entry
	}

	if ctx.Bool("json") {
		return printJSON(pr)
	}

	return printRecord(config.Stdout, pr)
}

// libraryAction prints the exercise catalog and the workout templates.
func libraryAction(ctx *cli.Context) error {
	if ctx.Bool("init") {
		dir := filepath.Dir(pathutil.LibraryFilePath())

		err := static.CopyFiles(dir)
		if err != nil {
			return err
		}

		report.Success(
			fmt.Sprintf(
				"Catalog written to %s. Set library.path in %s to use it",
				pathutil.LibraryFilePath(),
				pathutil.ConfigFilePath(),
			),
		)

		return nil
	}

	cfg, closer, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	defer closer.Close()

	lib, err := loadLibrary(cfg)
	if err != nil {
		return err
	}

	return printLibrary(config.Stdout, lib)
}

// serveAction serves the statistics API until interrupted.
func serveAction(ctx *cli.Context) error {
	ws, err := setup(ctx)
	if err != nil {
		return err
	}

	defer ws.Close()

	sigCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	port := ctx.Uint("port")

	srv := stats.NewServer(
		ws.history,
		ws.library,
		ws.cfg.Display.Unit,
		slog.Default(),
	)

	report.Info(
		fmt.Sprintf("Serving statistics at http://localhost:%d/api/stats", port),
	)

	return srv.ListenAndServe(sigCtx, port)
}

// exportAction writes the sessions logged within the selected period to a
// spreadsheet.
func exportAction(ctx *cli.Context) error {
	filter, err := config.Filter(ctx, now())
	if err != nil {
		return err
	}

	ws, err := setup(ctx)
	if err != nil {
		return err
	}

	defer ws.Close()

	sessions := ws.history.Between(filter.StartTime, filter.EndTime)

	s := stats.Compute(ws.history, ws.library, stats.Opts{
		StartTime: filter.StartTime,
		EndTime:   filter.EndTime,
		Unit:      ws.cfg.Display.Unit,
	})

	output := ctx.String("output")

	err = stats.Export(output, sessions, s)
	if err != nil {
		return err
	}

	report.Success(
		fmt.Sprintf("Exported %d sessions to %s", len(sessions), output),
	)

	return nil
}

// editConfigAction handles the edit-config command which opens the sculpt
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Fprintf(
			config.Stdout,
			"https://github.com/ayoisaiah/sculpt/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		ui.DisableStyling()
	}

	// Disable colour output if SCULPT_NO_COLOR is set
	if _, exists := os.LookupEnv(envSculptNoColor); exists {
		ui.DisableStyling()
	}

	if ctx.Bool("no-color") {
		ui.DisableStyling()
	}

	// Piped output should not contain escape sequences
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		ui.DisableStyling()
	}

	return nil
}

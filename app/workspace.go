package app

import (
	"errors"
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/sculpt/internal/apperr"
	"github.com/ayoisaiah/sculpt/internal/config"
	"github.com/ayoisaiah/sculpt/internal/history"
	"github.com/ayoisaiah/sculpt/internal/library"
	"github.com/ayoisaiah/sculpt/internal/pathutil"
	"github.com/ayoisaiah/sculpt/internal/ui"
	"github.com/ayoisaiah/sculpt/internal/workout"
	"github.com/ayoisaiah/sculpt/store"
)

var errDBUnavailable = &apperr.Error{
	Message: "the database at %s could not be opened",
}

// unavailableDB stands in for a database that failed to open. Every save
// reports the original failure.
type unavailableDB struct {
	err error
}

func (u unavailableDB) SaveSessions(_ []*workout.Session) error {
	return u.err
}

// workspace holds everything a command needs: the configuration, the
// exercise library and the workout history loaded from the database.
type workspace struct {
	cfg     *config.Config
	db      store.DB
	history *history.Store
	library *library.Library
	closers []io.Closer
}

// loadConfig reads the config file, applies command-line overrides and sets
// up logging and styling.
func loadConfig(ctx *cli.Context) (*config.Config, io.Closer, error) {
	configPath := pathutil.ConfigFilePath()

	cfg, err := config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, nil, err
	}

	logger, closer := config.NewLogger(pathutil.LogFilePath(), cfg.LogLevel())
	slog.SetDefault(logger)

	ui.DarkTheme = cfg.Display.DarkTheme

	if cfg.Display.NoColor {
		ui.DisableStyling()
	}

	return cfg, closer, nil
}

// setup loads the configuration, the exercise library and the workout
// history. The returned workspace must be closed.
func setup(ctx *cli.Context) (*workspace, error) {
	cfg, logCloser, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	ws := &workspace{
		cfg:     cfg,
		closers: []io.Closer{logCloser},
	}

	ws.library, err = library.Load(cfg.Library.Path)
	if err != nil {
		_ = ws.Close()
		return nil, err
	}

	ws.db, err = store.Open(cfg.Storage.Driver, cfg.DBPath())
	if err != nil {
		if errors.Is(err, store.ErrSculptRunning) ||
			errors.Is(err, store.ErrUnknownDriver) {
			_ = ws.Close()
			return nil, err
		}

		err = errDBUnavailable.Fmt(cfg.DBPath()).Wrap(err)

		slog.Warn(
			"unable to open the workout database, starting with an empty history",
			slog.String("driver", cfg.Storage.Driver),
			slog.Any("error", err),
		)

		ws.history = history.New(
			history.WithSaver(unavailableDB{err: err}),
			history.WithLogger(slog.Default()),
		)

		return ws, nil
	}

	// the database is closed before the log file
	ws.closers = append([]io.Closer{ws.db}, ws.closers...)

	ws.history = history.Open(
		ws.db,
		history.WithSaver(ws.db),
		history.WithLogger(slog.Default()),
	)

	slog.Debug(
		"workspace ready",
		slog.String("driver", cfg.Storage.Driver),
		slog.String("db", cfg.DBPath()),
		slog.Int("sessions", ws.history.TotalSessions()),
	)

	return ws, nil
}

// Close releases the database and the log file.
func (w *workspace) Close() error {
	var errs []error

	for _, c := range w.closers {
		if c == nil {
			continue
		}

		errs = append(errs, c.Close())
	}

	return errors.Join(errs...)
}

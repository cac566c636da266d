// Package config loads and validates the sculpt configuration from the config
// file and command-line flags
package config

import (
	"io"
	"os"

	"github.com/ayoisaiah/sculpt/internal/pathutil"
	"github.com/ayoisaiah/sculpt/store"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Storage       StorageConfig      `mapstructure:"storage"`
		Library       LibraryConfig      `mapstructure:"library"`
		Display       DisplayConfig      `mapstructure:"display"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Log           LogConfig          `mapstructure:"log"`
		CLI           CLIConfig          `mapstructure:"-"`
		prompted      bool
	}

	// StorageConfig selects where the workout history is kept.
	StorageConfig struct {
		Driver string `mapstructure:"driver"`
		Path   string `mapstructure:"path"`
	}

	// LibraryConfig points to a custom exercise catalog.
	LibraryConfig struct {
		Path string `mapstructure:"path"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		Unit           string `mapstructure:"unit"`
		DarkTheme      bool   `mapstructure:"dark_theme"`
		TwentyFourHour bool   `mapstructure:"twenty_four_hour"`
		NoColor        bool   `mapstructure:"-"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
		Sound   bool `mapstructure:"sound"`
	}

	// SettingsConfig holds general settings.
	SettingsConfig struct {
		Cmd string `mapstructure:"cmd"`
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// CLIConfig holds settings that only come from command-line flags.
	CLIConfig struct {
		Template string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config, applies the options in order, and validates the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// DBPath returns the database file for the configured driver. An explicit
// storage.path always wins.
func (c *Config) DBPath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}

	if c.Storage.Driver == store.DriverSQLite {
		return pathutil.SQLiteFilePath()
	}

	return pathutil.DBFilePath()
}

// DateFormat returns the layout used to print session timestamps.
func (c *Config) DateFormat() string {
	if c.Display.TwentyFourHour {
		return "Jan 02, 2006 15:04"
	}

	return "Jan 02, 2006 03:04 PM"
}

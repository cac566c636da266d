package config

import (
	"errors"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/ayoisaiah/sculpt/store"
)

var (
	validDrivers   = []string{store.DriverBolt, store.DriverSQLite}
	validUnits     = []string{"lb", "kg"}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	if c.Storage.Driver == "" {
		c.Storage.Driver = store.DriverBolt
	}

	if !slices.Contains(validDrivers, c.Storage.Driver) {
		return errUnknownDriver.Fmt(
			strings.Join(validDrivers, ", "),
			c.Storage.Driver,
		)
	}

	c.Display.Unit = strings.ToLower(strings.TrimSpace(c.Display.Unit))
	if c.Display.Unit == "" {
		c.Display.Unit = "lb"
	}

	if !slices.Contains(validUnits, c.Display.Unit) {
		return errInvalidUnit.Fmt(strings.Join(validUnits, ", "), c.Display.Unit)
	}

	if err := c.validateLog(); err != nil {
		return err
	}

	return c.validateLibrary()
}

func (c *Config) validateLog() error {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	if !slices.Contains(validLogLevels, c.Log.Level) {
		return errInvalidLogLevel.Fmt(
			strings.Join(validLogLevels, ", "),
			c.Log.Level,
		)
	}

	return nil
}

func (c *Config) validateLibrary() error {
	if c.Library.Path == "" {
		return nil
	}

	_, err := os.Stat(c.Library.Path)
	if errors.Is(err, os.ErrNotExist) {
		return errLibraryNotFound.Fmt(c.Library.Path)
	}

	return err
}

// LogLevel converts the configured level to a slog level.
func (c *Config) LogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	return slog.LevelInfo
}

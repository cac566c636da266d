package config

import (
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Template      string
	Driver        string
	DB            string
	Library       string
	SessionCmd    string
	DisableNotify bool
	Sound         bool
	NoColor       bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Template:      ctx.String("template"),
			Driver:        ctx.String("driver"),
			DB:            ctx.String("db"),
			Library:       ctx.String("library"),
			SessionCmd:    ctx.String("session-cmd"),
			DisableNotify: ctx.Bool("disable-notification"),
			Sound:         ctx.Bool("sound"),
			NoColor:       ctx.Bool("no-color"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	c.CLI.Template = strings.TrimSpace(opts.Template)

	if opts.Driver != "" {
		c.Storage.Driver = opts.Driver
	}

	if opts.DB != "" {
		c.Storage.Path = opts.DB
	}

	if opts.Library != "" {
		c.Library.Path = opts.Library
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.Sound {
		c.Notifications.Sound = true
	}

	c.Display.NoColor = opts.NoColor ||
		os.Getenv("NO_COLOR") != "" ||
		os.Getenv("SCULPT_NO_COLOR") != ""
}

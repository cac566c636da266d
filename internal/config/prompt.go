package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"golang.org/x/term"
)

const asciiLogo = `
███████╗ ██████╗██╗   ██╗██╗     ██████╗ ████████╗
██╔════╝██╔════╝██║   ██║██║     ██╔══██╗╚══██╔══╝
███████╗██║     ██║   ██║██║     ██████╔╝   ██║
╚════██║██║     ██║   ██║██║     ██╔═══╝    ██║
███████║╚██████╗╚██████╔╝███████╗██║        ██║
╚══════╝ ╚═════╝ ╚═════╝ ╚══════╝╚═╝        ╚═╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Unit          string
	Driver        string
	Notifications bool
	Sound         bool
}

// WithPromptConfig returns an Option that asks for the initial settings when
// no config file exists at configPath yet. Nothing is asked unless stdin is a
// terminal.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return nil
		}

		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Notifications: true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure Sculpt for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'sculpt edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Weight unit").
				Options(
					huh.NewOption("Pounds (lb)", "lb").Selected(true),
					huh.NewOption("Kilograms (kg)", "kg"),
				).
				Value(&opts.Unit),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where should your workout history be stored?").
				Options(
					huh.NewOption("BoltDB file", "bolt").Selected(true),
					huh.NewOption("SQLite database", "sqlite"),
				).
				Value(&opts.Driver),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show a desktop notification when a session is saved?").
				Value(&opts.Notifications),
			huh.NewConfirm().
				Title("Play a chime when a session is saved?").
				Value(&opts.Sound),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Display.Unit = opts.Unit
	c.Storage.Driver = opts.Driver
	c.Notifications.Enabled = opts.Notifications
	c.Notifications.Sound = opts.Sound
	c.prompted = true
}

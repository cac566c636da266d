// Package app defines the sculpt command-line interface
package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/sculpt/internal/config"
)

// Get retrieves the sculpt app instance.
func Get() *cli.App {
	sculptApp := &cli.App{
		Name: "sculpt",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Sculpt is a workout logger for the command-line. Log the sets, reps and
		weight of each exercise as you train, then review your history, totals
		and personal records.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Writer:               config.Stdout,
		ErrWriter:            config.Stderr,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "history",
				Usage:  "List past sessions grouped by exercise, newest first",
				Flags:  append(filterFlags(), jsonFlag),
				Action: historyAction,
			},
			{
				Name:   "stats",
				Usage:  "Show total sessions, total volume and personal records",
				Flags:  append(filterFlags(), jsonFlag),
				Action: statsAction,
			},
			{
				Name:      "pr",
				Usage:     "Show the personal record for one exercise",
				ArgsUsage: "<exercise>",
				Flags:     []cli.Flag{jsonFlag},
				Action:    prAction,
			},
			{
				Name:   "library",
				Usage:  "List the exercise catalog and workout templates",
				Flags:  []cli.Flag{initLibraryFlag},
				Action: libraryAction,
			},
			{
				Name:   "serve",
				Usage:  "Serve statistics as JSON on localhost",
				Flags:  []cli.Flag{portFlag},
				Action: serveAction,
			},
			{
				Name:   "export",
				Usage:  "Export the workout history to a spreadsheet",
				Flags:  append(filterFlags(), outputFlag),
				Action: exportAction,
			},
		},
		Flags: []cli.Flag{
			templateFlag,
			driverFlag,
			dbFlag,
			libraryFlag,
			disableNotificationFlag,
			soundFlag,
			sessionCmdFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}

	return sculptApp
}

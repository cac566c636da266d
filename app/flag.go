package app

import "github.com/urfave/cli/v2"

var (
	templateFlag = &cli.StringFlag{
		Name:    "template",
		Aliases: []string{"t"},
		Usage:   "Start the session from a workout template (e.g. 'Upper Body')",
	}

	driverFlag = &cli.StringFlag{
		Name:  "driver",
		Usage: "Storage backend for the workout history: bolt or sqlite",
	}

	dbFlag = &cli.StringFlag{
		Name:  "db",
		Usage: "Path to the database file",
	}

	libraryFlag = &cli.StringFlag{
		Name:  "library",
		Usage: "Path to a custom exercise catalog",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is saved",
	}

	soundFlag = &cli.BoolFlag{
		Name:  "sound",
		Usage: "Play a chime after a session is saved",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Report on a predefined period: today, yesterday, 7days, 14days, 30days, 90days, 180days, 365days or all-time",
	}

	startFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Usage:   "Only include sessions on or after this date (e.g. '2025-03-01' or '2 weeks ago')",
	}

	endFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Usage:   "Only include sessions on or before this date",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	initLibraryFlag = &cli.BoolFlag{
		Name:  "init",
		Usage: "Write the built-in catalog to the config directory for editing",
	}

	portFlag = &cli.UintFlag{
		Name:  "port",
		Usage: "Specify the port for the statistics server",
		Value: 1111,
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Path of the spreadsheet to write",
		Value:   "sculpt.xlsx",
	}
)

func filterFlags() []cli.Flag {
	return []cli.Flag{periodFlag, startFlag, endFlag}
}

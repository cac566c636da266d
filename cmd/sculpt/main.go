package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/ayoisaiah/sculpt/app"
	"github.com/ayoisaiah/sculpt/internal/pathutil"
	"github.com/ayoisaiah/sculpt/report"
)

func run(args []string) error {
	// a missing .env file is not an error
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	err = pathutil.Initialize()
	if err != nil {
		return err
	}

	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}

package config

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger returns a text logger that writes to a rotating log file at path.
// The returned closer releases the file.
func NewLogger(path string, level slog.Leveler) (*slog.Logger, io.Closer) {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(h), w
}

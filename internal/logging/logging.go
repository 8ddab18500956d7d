// Package logging provides the structured logger used by the catalog,
// built on zerolog. Console output is used on a terminal and JSON
// everywhere else unless a format is forced.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var defaultLogger = zerolog.New(os.Stderr).Level(zerolog.InfoLevel).With().Timestamp().Logger()

// Nop logger for discarding output.
var Nop = zerolog.Nop()

// Default returns the default logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault sets the default logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
}

// New creates a logger writing to w. format is "auto", "console" or
// "json"; level is parsed with zerolog.ParseLevel and falls back to info.
func New(w io.Writer, level, format string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	if useConsole(w, format) {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	}

	lvl := parseLevel(level)
	logger := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	if lvl <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

func useConsole(w io.Writer, format string) bool {
	switch strings.ToLower(format) {
	case "console", "pretty":
		return true
	case "json":
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func parseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Package logger configures the zerolog logger used by the randwalk CLI.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds a leveled logger writing to stderr. Unknown or empty level
// names fall back to info. With json set, raw JSON lines are emitted instead
// of the console format.
func New(level string, json bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var l zerolog.Logger
	if json {
		l = zerolog.New(os.Stderr)
	} else {
		l = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = os.Stderr
			w.TimeFormat = "15:04:05.000"
		}))
	}
	return l.Level(lvl).With().Timestamp().Logger()
}

// Package logging builds the zerolog logger used by the CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Format selects the log encoding.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// Options configures New.
type Options struct {
	Level  string
	Format Format
	// Out defaults to os.Stderr so command output on stdout stays clean.
	Out io.Writer
	// NoColor disables ANSI colours in console output.
	NoColor bool
}

// New returns a logger for opts. An empty level means info.
func New(opts Options) (zerolog.Logger, error) {
	levelStr := strings.TrimSpace(opts.Level)
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logging: level %q: %w", opts.Level, err)
	}

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	var logger zerolog.Logger
	switch opts.Format {
	case FormatJSON:
		logger = zerolog.New(out)
	case FormatConsole, "":
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: opts.NoColor})
	default:
		return zerolog.Nop(), fmt.Errorf("logging: unknown format %q", opts.Format)
	}
	return logger.Level(level).With().Timestamp().Logger(), nil
}

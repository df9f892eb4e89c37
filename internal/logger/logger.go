// Package logger builds the process logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type LogBuild struct {
	writer  io.Writer
	level   string
	console bool
}

func New() *LogBuild {
	return &LogBuild{writer: os.Stdout}
}

func (build *LogBuild) FromBuffer(w io.Writer) *LogBuild {
	build.writer = w
	return build
}

// Level accepts any zerolog level name. Unknown names fall back to info.
func (build *LogBuild) Level(level string) *LogBuild {
	build.level = level
	return build
}

// Format selects "console" for human-readable output; anything else is JSON.
func (build *LogBuild) Format(format string) *LogBuild {
	build.console = strings.EqualFold(format, "console")
	return build
}

func (build *LogBuild) Make() zerolog.Logger {
	w := build.writer
	if build.console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(build.level))
	if err != nil || build.level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("service", "contentflow").Logger()
}

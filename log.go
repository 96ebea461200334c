package aoc

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"go.trai.ch/zerr"
)

// NewLogger returns a console logger writing to w. Colour is disabled when
// NO_COLOR is set or w is not a terminal.
func NewLogger(w io.Writer, debug bool) zerolog.Logger {
	noColor := os.Getenv("NO_COLOR") != ""
	if f, ok := w.(*os.File); !ok {
		noColor = true
	} else if fi, err := f.Stat(); err == nil && (fi.Mode()&os.ModeCharDevice) == 0 {
		noColor = true
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// ErrorFields returns the zerr metadata attached anywhere in err's chain, so
// it can be logged next to the message. Outer values win.
func ErrorFields(err error) map[string]any {
	fields := make(map[string]any)
	for ; err != nil; err = errors.Unwrap(err) {
		z, ok := err.(*zerr.Error)
		if !ok {
			continue
		}
		for k, v := range z.Metadata() {
			if _, ok := fields[k]; !ok {
				fields[k] = v
			}
		}
	}
	return fields
}

package logger

import (
	"io"
	"log/slog"
	"os"
)

var level = new(slog.LevelVar)

// Log is the process-wide diagnostic logger. It writes to stderr so that
// stdout only carries the version list.
var Log = New(os.Stderr)

func init() {
	level.Set(slog.LevelWarn)
}

// New returns a text logger bound to the shared level.
func New(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetDebug switches the shared level between debug and warn.
func SetDebug(debug bool) {
	if debug {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(slog.LevelWarn)
}

package cli

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// newLogger builds the diagnostic logger for one CLI invocation. Logs go to
// w, colored only when w is a terminal. Every record carries the run id.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
		w = colorable.NewColorable(f)
	}

	handler := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	})
	return slog.New(handler).With("run", newRunID())
}

// newRunID returns a time-sortable UUIDv7 identifying one invocation.
func newRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}

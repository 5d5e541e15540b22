package dirflat

import (
	"io"
	"log/slog"
	"os"
)

// LogOptions configures diagnostic output.
type LogOptions struct {
	// Verbose enables debug-level traces (per-rename, per-skip).
	Verbose bool
	// Stderr is the writer for diagnostics (defaults to os.Stderr).
	Stderr io.Writer
}

// InitLog installs the default logger. Diagnostics always go to stderr;
// the normal output stream is left to the summary.
func InitLog(opts LogOptions) {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

package logging

import (
	"io"
	"log/slog"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation = "operation"
	KeyFolder    = "folder"
	KeyFile      = "file"
	KeyError     = "error"
)

// Setup installs the process-wide logger. Diagnostics go to w (stderr in the
// CLI) so stdout stays reserved for command results. Verbose lowers the
// level to debug.
func Setup(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Folder returns a slog attribute for a folder ID.
func Folder(id string) slog.Attr {
	return slog.String(KeyFolder, id)
}

// File returns a slog attribute for a file ID.
func File(id string) slog.Attr {
	return slog.String(KeyFile, id)
}

// Err returns a slog attribute for an error. A nil error yields an empty
// group that slog omits from output.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Group("")
	}
	return slog.String(KeyError, err.Error())
}

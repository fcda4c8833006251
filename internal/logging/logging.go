package logging

import (
	"io"
	"log/slog"

	"github.com/pterm/pterm"
)

// New returns a slog logger that prints through pterm.
func New(level slog.Level, w io.Writer) *slog.Logger {
	logger := pterm.DefaultLogger.WithLevel(ptermLevel(level)).WithWriter(w)
	return slog.New(pterm.NewSlogHandler(logger))
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level < slog.LevelInfo:
		return pterm.LogLevelDebug
	case level < slog.LevelWarn:
		return pterm.LogLevelInfo
	case level < slog.LevelError:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}

// Package logging configures the structured loggers the rest of the
// module uses. Grounded on the teacher's utils/logger.go
// (InicializarLogger), adapted from a pair of package-level globals into
// a constructor so every Translator/CLI command can hold its own
// component-scoped *slog.Logger instead of sharing mutable package
// state.
package logging

import (
	"log/slog"
	"os"
)

// New builds a slog.Logger writing text-formatted records to stdout at
// level, tagged with component the way the teacher's logger tags every
// record with "modulo".
func New(level string, component string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return slog.New(handler).With("component", component)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Package logger builds the process-wide slog logger. Handlers and services
// derive request- and session-scoped loggers from it with With; nothing in
// the intake flow logs raw answer values.
package logger

import (
	"log/slog"
	"os"
)

// New returns a JSON logger on stdout. Development runs at debug level so
// blocker and sequencing decisions are visible while editing the catalog;
// everything else logs at info.
func New(environment string) *slog.Logger {
	level := slog.LevelInfo
	if environment == "development" {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

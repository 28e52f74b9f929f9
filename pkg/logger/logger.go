// Package logger builds the process slog.Logger and the attribute helpers
// shared by every package.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/fx"
)

var Module = fx.Module("logger",
	fx.Provide(NewLogger),
)

// NewLogger returns a logger writing to stderr. LOG_LEVEL selects the level
// (debug, info, warn, error; info when unset or unknown) and GO_ENV=production
// switches to JSON output.
func NewLogger() *slog.Logger {
	return New(os.Stderr, os.Getenv("LOG_LEVEL"), os.Getenv("GO_ENV") == "production")
}

// New builds a logger on w.
func New(w io.Writer, level string, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps a LOG_LEVEL value to a slog level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Scope tags log lines with the component that wrote them.
func Scope(scope string) slog.Attr {
	return slog.String("scope", scope)
}

// Error attaches err under the "error" key.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

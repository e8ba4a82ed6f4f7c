// Package logger provides the shared slog construction and attribute helpers.
//
// Every component logs through a *slog.Logger scoped with logger.Scope, so log
// lines carry a consistent "scope" attribute (e.g. scope=graph.svc).
package logger

import (
	"log/slog"
	"os"
	"strings"

	"go.uber.org/fx"
)

// Module provides the application logger.
var Module = fx.Module("logger",
	fx.Provide(NewLogger),
)

// NewLogger builds the process-wide slog logger.
//
// LOG_LEVEL selects the minimum level (debug, info, warn/warning, error;
// defaults to info). GO_ENV=production switches to the JSON handler for
// machine-readable output; otherwise a human-friendly text handler is used.
func NewLogger() *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(os.Getenv("GO_ENV"), "production") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

// Scope returns the standard scope attribute used to tag log lines with the
// component they originate from.
func Scope(scope string) slog.Attr {
	return slog.String("scope", scope)
}

// Error returns the standard error attribute.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

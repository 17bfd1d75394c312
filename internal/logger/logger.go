// Package logger configures the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLevel names the environment variable consulted when no level is given.
const EnvLevel = "WORDBRAIN_LOG_LEVEL"

// LevelFromString maps a level name to a slog level. Unknown names map to
// info and report ok=false.
func LevelFromString(s string) (l slog.Level, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "dbg":
		return slog.LevelDebug, true
	case "info", "inf":
		return slog.LevelInfo, true
	case "warn", "wrn", "warning":
		return slog.LevelWarn, true
	case "error", "err":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	l, _ := LevelFromString(level)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

// Init installs a stderr logger as the slog default. An empty level falls
// back to EnvLevel, then to info.
func Init(level string) *slog.Logger {
	if level == "" {
		level = os.Getenv(EnvLevel)
	}
	logger := New(os.Stderr, level)
	slog.SetDefault(logger)

	if _, ok := LevelFromString(level); !ok && level != "" {
		logger.Warn("unknown log level, using info", "level", level)
	}
	return logger
}

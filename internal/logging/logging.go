// Package logging configures the process-wide slog logger for semcommit.
//
// Logs go to stderr as text so that stdout stays reserved for the version
// summary. The level comes from an explicit setting, then LOG_LEVEL, and
// defaults to warn.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel names the environment variable consulted when no level is given.
const EnvLogLevel = "LOG_LEVEL"

// ParseLevel maps a case-insensitive level name to a slog.Level.
// Unknown or empty names yield the warn level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewStructuredLogger builds a text logger writing to w that tags every record
// with module and version. Debug loggers also record the source location.
func NewStructuredLogger(w io.Writer, module, version, level string) *slog.Logger {
	lvl := ParseLevel(level)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	})
	return slog.New(handler).With("module", module, "version", version)
}

// SetDefaultStructuredLoggerWithLevel installs a stderr logger as the slog
// default. An empty level falls back to LOG_LEVEL.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	if level == "" {
		level = os.Getenv(EnvLogLevel)
	}
	slog.SetDefault(NewStructuredLogger(os.Stderr, module, version, level))
}

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{" Info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"chatty", slog.LevelWarn},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, "semcommit", "v1.2.3", "info")

	logger.Debug("hidden")
	logger.Info("version bumped", "new", "1.3.0")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `msg="version bumped"`)
	assert.Contains(t, out, "module=semcommit")
	assert.Contains(t, out, "version=v1.2.3")
	assert.Contains(t, out, "new=1.3.0")
	assert.NotContains(t, out, "source=")
}

func TestNewStructuredLoggerDebugSource(t *testing.T) {
	var buf bytes.Buffer
	NewStructuredLogger(&buf, "semcommit", "dev", "debug").Debug("scanning")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "source=")
}

func TestSetDefaultStructuredLoggerWithLevel(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	t.Setenv(EnvLogLevel, "error")
	SetDefaultStructuredLoggerWithLevel("semcommit", "dev", "")
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelError))

	SetDefaultStructuredLoggerWithLevel("semcommit", "dev", "debug")
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}

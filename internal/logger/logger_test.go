package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelWarn,
	}

	for name, want := range cases {
		assert.Equal(t, want, ParseLevel(name), name)
	}
}

func TestMultiHandler(t *testing.T) {
	t.Run("Dispatches to every enabled handler", func(t *testing.T) {
		// Given: one debug and one error handler
		var debugOut, errorOut bytes.Buffer
		handler := NewMultiHandler(
			slog.NewJSONHandler(&debugOut, &slog.HandlerOptions{Level: slog.LevelDebug}),
			slog.NewJSONHandler(&errorOut, &slog.HandlerOptions{Level: slog.LevelError}),
		)
		log := slog.New(handler).With("component", "test")

		// When: logging at info
		log.Info("hello", "cell", 5)

		// Then: only the debug handler writes it
		assert.Contains(t, debugOut.String(), `"msg":"hello"`)
		assert.Contains(t, debugOut.String(), `"component":"test"`)
		assert.Empty(t, errorOut.String())
	})

	t.Run("Enabled if any handler is", func(t *testing.T) {
		handler := NewMultiHandler(
			slog.NewJSONHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
			slog.NewJSONHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)

		assert.True(t, handler.Enabled(context.Background(), slog.LevelInfo))
		assert.False(t, handler.Enabled(context.Background(), slog.LevelDebug))
	})
}

func TestNew(t *testing.T) {
	t.Run("Console only", func(t *testing.T) {
		var out bytes.Buffer
		log := New(&out, slog.LevelInfo, false)

		log.Debug("dropped")
		log.Info("kept")

		assert.NotContains(t, out.String(), "dropped")
		assert.Contains(t, out.String(), "kept")
	})

	t.Run("With the otel bridge", func(t *testing.T) {
		var out bytes.Buffer
		log := New(&out, slog.LevelInfo, true)

		_, ok := log.Handler().(*MultiHandler)
		require.True(t, ok)

		log.Info("kept")
		assert.Contains(t, out.String(), "kept")
	})
}

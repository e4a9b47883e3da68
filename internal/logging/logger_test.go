package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        DefaultLevel,
		"verbose": DefaultLevel,
	}
	for input, want := range tests {
		assert.Equal(t, want, ParseLevel(input), "input %q", input)
	}
}

func TestIsValidLevel(t *testing.T) {
	assert.True(t, IsValidLevel(""))
	assert.True(t, IsValidLevel("Debug"))
	assert.False(t, IsValidLevel("verbose"))
}

func TestInit_FiltersByLevel(t *testing.T) {
	t.Cleanup(resetLogger)

	var buf bytes.Buffer
	Init(&buf, "warn")

	Debug(context.Background(), "hidden debug")
	Info(context.Background(), "hidden info")
	Warn(context.Background(), "visible warn", slog.String("key", "value"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible warn")
	assert.Contains(t, out, "key=value")
}

func TestWithComponent(t *testing.T) {
	t.Cleanup(resetLogger)

	var buf bytes.Buffer
	Init(&buf, "debug")

	ctx := WithComponent(context.Background(), "fetch")
	Debug(ctx, "cache hit")
	Warn(context.Background(), "no component")

	out := buf.String()
	assert.Contains(t, out, "component=fetch")
	assert.Contains(t, out, "cache hit")
	assert.Contains(t, out, "no component")
}

// Package logging provides structured logging for hadolint-get using slog.
//
// Usage:
//
//	logging.Init(os.Stderr, os.Getenv(logging.LogLevelEnvVar))
//	ctx = logging.WithComponent(ctx, "fetch")
//	logging.Debug(ctx, "cache hit", slog.String("path", path))
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// LogLevelEnvVar is the environment variable that controls log level.
const LogLevelEnvVar = "HADOLINT_GET_LOG_LEVEL"

// DefaultLevel is used when no level is configured.
const DefaultLevel = slog.LevelWarn

var (
	logger *slog.Logger
	mu     sync.RWMutex
)

type contextKey int

const componentKey contextKey = iota

// Init replaces the package logger with a text logger writing to w at the given level.
// Invalid levels fall back to DefaultLevel.
func Init(w io.Writer, level string) {
	if w == nil {
		w = io.Discard
	}
	mu.Lock()
	defer mu.Unlock()
	logger = createLogger(w, ParseLevel(level))
}

// resetLogger resets the logger to nil (for testing).
func resetLogger() {
	mu.Lock()
	defer mu.Unlock()
	logger = nil
}

func getLogger() *slog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = createLogger(os.Stderr, DefaultLevel)
	}
	return logger
}

func createLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel parses a log level string. Empty or unknown values return DefaultLevel.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return DefaultLevel
	}
}

// IsValidLevel reports whether s names a known level. Empty is valid.
func IsValidLevel(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR", "":
		return true
	default:
		return false
	}
}

// WithComponent returns a context whose log records carry component.
func WithComponent(ctx context.Context, component string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, componentKey, component)
}

// Debug logs at DEBUG level.
func Debug(ctx context.Context, msg string, attrs ...any) {
	log(ctx, slog.LevelDebug, msg, attrs...)
}

// Info logs at INFO level.
func Info(ctx context.Context, msg string, attrs ...any) {
	log(ctx, slog.LevelInfo, msg, attrs...)
}

// Warn logs at WARN level.
func Warn(ctx context.Context, msg string, attrs ...any) {
	log(ctx, slog.LevelWarn, msg, attrs...)
}

func log(ctx context.Context, level slog.Level, msg string, attrs ...any) {
	if ctx == nil {
		ctx = context.Background()
	}
	l := getLogger()
	if !l.Enabled(ctx, level) {
		return
	}
	var allAttrs []any
	if v, ok := ctx.Value(componentKey).(string); ok && v != "" {
		allAttrs = append(allAttrs, slog.String("component", v))
	}
	allAttrs = append(allAttrs, attrs...)
	l.Log(ctx, level, msg, allAttrs...)
}

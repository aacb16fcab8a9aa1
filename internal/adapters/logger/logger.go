// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"go.nixgl.dev/glhost/internal/core/ports"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu     sync.RWMutex
	out    io.Writer
	logger *slog.Logger
}

// New creates a new Logger writing to stderr. Debug logging starts
// enabled when the DEBUG environment variable is set, matching the
// wrapper's historical behavior.
func New() *Logger {
	l := &Logger{out: os.Stderr}
	_, debug := os.LookupEnv("DEBUG")
	l.rebuild(debug)
	return l
}

// SetDebug toggles debug-level logging.
func (l *Logger) SetDebug(debug bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rebuildLocked(debug)
}

// SetOutput updates the logger's output destination. Debug level is
// preserved only if re-enabled afterwards; tests use this to capture
// output.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
	l.rebuildLocked(l.logger.Enabled(context.Background(), slog.LevelDebug))
}

func (l *Logger) rebuild(debug bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rebuildLocked(debug)
}

func (l *Logger) rebuildLocked(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(l.out, &slog.HandlerOptions{Level: level})
	l.logger = slog.New(handler)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", "error", err)
}

// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/scriptmerge/internal/core/ports"
)

// FormatEnv selects the log format. The value "json" switches to JSON records.
const FormatEnv = "SCRIPTMERGE_LOG_FORMAT"

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	level    *slog.LevelVar
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a Logger writing to stderr at info level.
func New() ports.Logger {
	l := &Logger{
		level:    &slog.LevelVar{},
		output:   os.Stderr,
		jsonMode: strings.EqualFold(os.Getenv(FormatEnv), "json"),
	}
	l.level.Set(slog.LevelInfo)
	l.logger = slog.New(l.newHandler(l.output))
	return l
}

func (l *Logger) newHandler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: l.level}
	if l.jsonMode {
		return slog.NewJSONHandler(w, opts)
	}
	return NewPrettyHandler(w, opts)
}

// SetOutput updates the logger's output destination. A nil writer means stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.newHandler(w))
}

// SetJSON switches between JSON and pretty output, keeping the destination.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.logger = slog.New(l.newHandler(l.output))
}

// SetDebug lowers the level to debug when enabled and restores info otherwise.
func (l *Logger) SetDebug(enable bool) {
	if enable {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelInfo)
}

// Debug logs a diagnostic message.
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

// Error logs err with its cause chain and metadata.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := collectErrorEntries(err)
	if len(entries) == 0 {
		entries = []ErrorEntry{{Message: err.Error()}}
	}

	if l.jsonMode {
		attrs := []any{"error", err.Error()}
		for _, e := range entries {
			for key, value := range e.Metadata {
				attrs = append(attrs, key, value)
			}
		}
		l.logger.Error(entries[0].Message, attrs...)
		return
	}

	l.logger.Error(formatErrorEntries(entries))
}

// Package applog is the JSON logger shared by the demo commands.
package applog

import (
	"io"
	"log/slog"
	"os"
)

type Logger struct {
	logger *slog.Logger
}

// New returns a Logger writing JSON lines to w.
func New(w io.Writer) *Logger {
	return &Logger{slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{}))}
}

// Default writes to stdout.
func Default() *Logger { return New(os.Stdout) }

func (l *Logger) Info(log string, args ...any) { l.logger.Info(log, args...) }
func (l *Logger) Error(err error, args ...any) { l.logger.Error(err.Error(), args...) }

// Package logging defines a minimal structured-logging interface used across
// the project. Implementations wrap slog or logrus.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "upload finished", "code", code, "bytes", size)
type Logger interface {
	// Debug logs diagnostic details that are noisy in normal operation.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// Supported values for the log format setting.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatLogrus = "logrus"
)

// New builds a Logger writing to w. format selects the backend
// (text/json via slog, or logrus) and level is one of debug, info, warn, error.
func New(format, level string, w io.Writer) (Logger, error) {
	switch strings.ToLower(format) {
	case "", FormatText, FormatJSON:
		l, err := newSlogLogger(strings.ToLower(format), level, w)
		if err != nil {
			return nil, err
		}
		return l, nil
	case FormatLogrus:
		l := logrus.New()
		l.SetOutput(w)
		if level != "" {
			lvl, err := logrus.ParseLevel(level)
			if err != nil {
				return nil, err
			}
			l.SetLevel(lvl)
		}
		return NewLogrusLogger(logrus.NewEntry(l)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

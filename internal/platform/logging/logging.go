// Package logging provides structured logger construction and context propagation
// using the standard library slog package.
//
// Logger construction:
//
//	logger := logging.New("info", "json", os.Stderr)
//
// Formats are "json", "text" and "pretty". Pretty output is colourised with
// tint when the writer is a terminal.
//
// Context propagation:
//
//	ctx = logging.WithLogger(ctx, logger)
//	logger = logging.FromContext(ctx)
//
// Error logging convention for application services:
//
//	logger.ErrorContext(ctx, "failed to delete todo",
//	    slog.String("operation", "Board.Delete"),
//	    slog.String("todo_id", id),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// contextKey is the unexported key type for storing loggers in context.
type contextKey struct{}

// DefaultFileName is the log file used by the terminal UI when no explicit
// file is configured.
const DefaultFileName = "todo-client.log"

// New creates a configured *slog.Logger.
//
// Valid levels are "debug", "info", "warn" and "error"; anything else means
// info. "text" selects slog.NewTextHandler, "pretty" selects tint and every
// other value selects slog.NewJSONHandler.
//
// When level is "debug", source code location is included in log output.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)
	redact := newRedactAttr()

	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:       lvl,
			AddSource:   lvl == slog.LevelDebug,
			ReplaceAttr: redact,
		})
	case "pretty":
		handler = tint.NewHandler(w, &tint.Options{
			Level:       lvl,
			AddSource:   lvl == slog.LevelDebug,
			TimeFormat:  time.Kitchen,
			NoColor:     !isTerminal(w),
			ReplaceAttr: redact,
		})
	default:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       lvl,
			AddSource:   lvl == slog.LevelDebug,
			ReplaceAttr: redact,
		})
	}

	return slog.New(handler)
}

// OpenFile opens path for appending, creating parent directories as needed.
// An empty path selects DefaultFileName under the OS temp directory.
func OpenFile(path string) (*os.File, error) {
	if path == "" {
		path = filepath.Join(os.TempDir(), DefaultFileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

// WithLogger returns a new context with the given logger stored in it.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext extracts a *slog.Logger from the context.
// If no logger is stored, it returns slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// FromContextOr is FromContext with an explicit fallback used when the
// context carries no logger. A nil fallback means slog.Default().
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	if fallback != nil {
		return fallback
	}
	return slog.Default()
}

// parseLevel converts a level string to slog.Level.
// Unrecognized values default to slog.LevelInfo.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

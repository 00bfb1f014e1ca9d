// Package log provides categorized structured logging for cubestate.
//
// Records go to a text handler on the configured writer and, when a log
// file is set, to a JSON handler on that file. Both sinks share one level.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	slogmulti "github.com/samber/slog-multi"
)

// Category tags a record with the subsystem that produced it.
type Category string

const (
	CatEngine  Category = "engine"
	CatDB      Category = "db"
	CatSession Category = "session"
	CatCLI     Category = "cli"
	CatTUI     Category = "tui"
)

var (
	level   = new(slog.LevelVar)
	current atomic.Pointer[slog.Logger]
)

func init() {
	level.Set(slog.LevelInfo)
	current.Store(slog.New(slog.DiscardHandler))
}

// Options configures Init.
type Options struct {
	// Writer receives human-readable records. Defaults to os.Stderr.
	Writer io.Writer
	// Level is one of debug, info, warn, error.
	Level string
	// File, when set, receives JSON records as well.
	File string
}

// Init installs the process logger and returns a function that releases
// the log file, if any.
func Init(opts Options) (func() error, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	level.Set(lvl)

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
	}

	closeFn := func() error { return nil }
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
		closeFn = f.Close
	}

	current.Store(slog.New(slogmulti.Fanout(handlers...)))
	return closeFn, nil
}

// ParseLevel converts a level name to a slog.Level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger returns the process logger scoped to a category.
func Logger(cat Category) *slog.Logger {
	return current.Load().With("cat", string(cat))
}

// SetLogger replaces the process logger. Intended for tests.
func SetLogger(l *slog.Logger) {
	current.Store(l)
}

func logAt(lvl slog.Level, cat Category, msg string, args ...any) {
	l := current.Load()
	if !l.Enabled(context.Background(), lvl) {
		return
	}
	l.Log(context.Background(), lvl, msg, append([]any{"cat", string(cat)}, args...)...)
}

// Debug logs at debug level.
func Debug(cat Category, msg string, args ...any) {
	logAt(slog.LevelDebug, cat, msg, args...)
}

// Info logs at info level.
func Info(cat Category, msg string, args ...any) {
	logAt(slog.LevelInfo, cat, msg, args...)
}

// Warn logs at warn level.
func Warn(cat Category, msg string, args ...any) {
	logAt(slog.LevelWarn, cat, msg, args...)
}

// ErrorErr logs err at error level.
func ErrorErr(cat Category, msg string, err error, args ...any) {
	logAt(slog.LevelError, cat, msg, append([]any{"error", err}, args...)...)
}

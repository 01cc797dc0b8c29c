// Package logging builds the application logger.
//
// The terminal belongs to the UI while the app runs, so records go to a
// file instead of stdout.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// DefaultFile is created in the working directory at startup.
const DefaultFile = "loginadvance.log"

type Options struct {
	Level  string // "debug"|"info"|"warn"|"error"
	Format string // "text"|"json"
}

func New(w io.Writer, opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var h slog.Handler
	if strings.ToLower(opts.Format) == "json" {
		h = slog.NewJSONHandler(w, handlerOpts)
	} else {
		h = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(h)
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// OpenFile truncates path and returns a logger writing to it together with
// a close func. When the file cannot be created the logger discards
// everything and the error is returned alongside it.
func OpenFile(path string, opts Options) (*slog.Logger, func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return Discard(), func() error { return nil }, fmt.Errorf("create log file %s: %w", path, err)
	}
	return New(f, opts), f.Close, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return New(io.Discard, Options{Level: "error"})
}

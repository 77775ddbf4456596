// Package logger provides structured logging using log/slog.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lululau/whatday/internal/config"
)

// Setup initializes the global logger writing to w.
// Call this once at application startup.
func Setup(cfg *config.Config, w io.Writer) *slog.Logger {
	level := parseLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// Output picks where logs go. The interactive UI owns the terminal, so
// without a log file its logs are discarded; plain runs log to stderr.
// The returned close function is always non-nil.
func Output(cfg *config.Config, interactive bool) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open log file: %w", err)
		}
		return f, f.Close, nil
	}
	if interactive {
		return io.Discard, noop, nil
	}
	return os.Stderr, noop, nil
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
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

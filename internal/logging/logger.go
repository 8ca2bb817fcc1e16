// Package logging configures the process-wide slog logger. Log output goes
// to stderr because stdout is reserved for the rendered report.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config represents the logging configuration
type Config struct {
	Level  slog.Level
	Writer io.Writer // defaults to os.Stderr
}

// DefaultConfig returns the default logging configuration
func DefaultConfig() *Config {
	return &Config{
		Level: slog.LevelWarn,
	}
}

// ParseLevel converts a string log level to slog.Level
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger creates a new logger with the given configuration
func NewLogger(config Config) *slog.Logger {
	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: config.Level,
	})

	return slog.New(handler)
}

// SetDefault creates and sets a default logger with the given configuration
func SetDefault(config Config) {
	slog.SetDefault(NewLogger(config))
}

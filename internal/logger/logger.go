// Package logger builds the structured slog loggers used by dragonsumm.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Log format names accepted in configuration.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds configuration options for the logger
type Config struct {
	// Level is the minimum level: "debug", "info", "warn", "error" or "disabled".
	Level string

	// Format is "text" or "json".
	Format string

	// Output defaults to os.Stderr. Stdout is reserved for MCP traffic and
	// summaries printed by the CLI.
	Output io.Writer

	// DefaultTags are attached to every record.
	DefaultTags map[string]interface{}
}

// DefaultConfig returns a default logger configuration
func DefaultConfig() *Config {
	return &Config{
		Level:       "info",
		Format:      FormatText,
		Output:      os.Stderr,
		DefaultTags: map[string]interface{}{"service": "dragonsumm"},
	}
}

// levelDisabled sits above every level slog emits.
const levelDisabled = slog.Level(100)

// ParseLevel converts a level name to a slog.Level. Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "disabled", "off":
		return levelDisabled
	default:
		return slog.LevelInfo
	}
}

// New creates a logger from config. A nil config means DefaultConfig().
func New(config *Config) *slog.Logger {
	if config == nil {
		config = DefaultConfig()
	}

	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(config.Level)}
	var handler slog.Handler
	if strings.EqualFold(config.Format, FormatJSON) {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(handler)
	for k, v := range config.DefaultTags {
		logger = logger.With(k, v)
	}
	return logger
}

// Setup creates a logger from config and installs it as the slog default.
func Setup(config *Config) *slog.Logger {
	logger := New(config)
	slog.SetDefault(logger)
	return logger
}

// Component returns a child logger tagged with a component name. A nil
// parent means slog.Default().
func Component(parent *slog.Logger, name string) *slog.Logger {
	if parent == nil {
		parent = slog.Default()
	}
	return parent.With("component", name)
}

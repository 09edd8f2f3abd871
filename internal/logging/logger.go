// Package logging wires zerolog for the CLI and the TUI demo.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Environment variables read by NewFromEnv.
const (
	EnvLogLevel  = "COLLAPSEPANE_LOG_LEVEL"
	EnvLogFormat = "COLLAPSEPANE_LOG_FORMAT"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// Output defaults to stderr. The demo points it at a session file because
	// the terminal belongs to the TUI.
	Output io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output io.Writer = out
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    out != os.Stderr,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a config level name to a zerolog level.
// Unknown names return fallback.
func ParseLevel(level string, fallback zerolog.Level) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	}
	return fallback
}

// NewFromEnv creates a logger based on environment variables
// COLLAPSEPANE_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// COLLAPSEPANE_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return New(ConfigFromEnv(DefaultConfig()))
}

// ConfigFromEnv overlays the environment on top of cfg.
func ConfigFromEnv(cfg Config) Config {
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Level = ParseLevel(level, cfg.Level)
	}

	if format := os.Getenv(EnvLogFormat); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return cfg
}

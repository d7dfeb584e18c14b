package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Server implementation defaults reported in the MCP initialize response.
const (
	DefaultServerName    = "mcp-roo"
	DefaultServerVersion = "1.0.0"
)

// LogFormat selects the slog handler used by the CLI.
type LogFormat string

const (
	// LogFormatText writes key=value lines.
	LogFormatText LogFormat = "text"
	// LogFormatJSON writes one JSON object per line.
	LogFormatJSON LogFormat = "json"
)

// Options configures the Proofessor server.
type Options struct {
	// Logger receives server diagnostics.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// ReadyOutput receives the readiness line once stdio is bound,
	// independent of the log level. If nil, os.Stderr is used.
	ReadyOutput io.Writer

	// Name is the server implementation name.
	Name string

	// Version is the server implementation version.
	Version string

	// LenientArguments skips required-field validation; missing required
	// fields then render as empty strings.
	LenientArguments bool

	// LogLevel is the minimum level the CLI logs at.
	LogLevel slog.Level

	// LogFormat is the CLI log output format.
	LogFormat LogFormat
}

// Defaults returns Options with every field at its default.
func Defaults() *Options {
	return &Options{
		Name:      DefaultServerName,
		Version:   DefaultServerVersion,
		LogLevel:  slog.LevelInfo,
		LogFormat: LogFormatText,
	}
}

// ParseLogFormat validates a log format name.
func ParseLogFormat(s string) (LogFormat, error) {
	switch LogFormat(strings.ToLower(strings.TrimSpace(s))) {
	case LogFormatText, "":
		return LogFormatText, nil
	case LogFormatJSON:
		return LogFormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported log format %q (want text or json)", s)
	}
}

// ParseLogLevel validates a log level name (debug, info, warn, error).
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}

	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("unsupported log level %q: %w", s, err)
	}

	return level, nil
}

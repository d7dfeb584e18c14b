package proofessor

import (
	"io"
	"log/slog"

	"github.com/wagiedev/proofessor-mcp/internal/config"
)

// Option configures Options using the functional options pattern.
type Option func(*Options)

// applyOptions applies functional options on top of the defaults.
func applyOptions(opts []Option) *Options {
	options := config.Defaults()
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for server diagnostics.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithReadyOutput sets where the readiness line is written once stdio is
// bound. The line is written regardless of the logger's level. Defaults to
// os.Stderr.
func WithReadyOutput(w io.Writer) Option {
	return func(o *Options) {
		o.ReadyOutput = w
	}
}

// WithName sets the implementation name reported to clients.
func WithName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}

// WithVersion sets the implementation version reported to clients.
func WithVersion(version string) Option {
	return func(o *Options) {
		o.Version = version
	}
}

// WithLenientArguments accepts calls that omit required fields; the missing
// fields render as empty strings. By default such calls fail.
func WithLenientArguments(lenient bool) Option {
	return func(o *Options) {
		o.LenientArguments = lenient
	}
}

// NopLogger returns a logger that discards all output.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

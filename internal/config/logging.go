package config

import (
	"io"
	"log/slog"
)

// NewLogger builds a logger writing to w in the configured format and level.
// The stdio transport owns stdout, so callers pass stderr.
func (o *Options) NewLogger(w io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: o.LogLevel}

	if o.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}

	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

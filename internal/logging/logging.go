// Package logging builds the zerolog logger used by both binaries.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"lg/diet-planner/internal/config"
)

// New returns a logger writing to w at cfg.LogLevel. Every event carries a
// timestamp plus the service and env fields.
func New(service string, cfg config.Config, w io.Writer) zerolog.Logger {
	out := w
	if cfg.LogFormat == config.FormatConsole {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(out).
		Level(cfg.LogLevel).
		With().
		Timestamp().
		Str("service", service).
		Str("env", cfg.Env).
		Logger()
}

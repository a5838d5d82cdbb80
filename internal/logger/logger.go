package logger

import (
	"io"
	"time"

	"github.com/akave-ai/msgdecode/internal/config"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// New builds the process logger. Every line carries the run_id so output
// from one invocation can be grouped.
func New(cfg config.LoggingConfig, w io.Writer) zerolog.Logger {
	if cfg.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}

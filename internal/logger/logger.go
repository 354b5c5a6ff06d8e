package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates a timestamped logger tagged with the given service name,
// writing JSON lines to stdout.
func New(service string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	return zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}

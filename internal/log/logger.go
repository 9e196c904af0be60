package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger: console output on stdout, stamped with the
// service name. Unknown level strings fall back to info.
func New(level string) *zerolog.Logger {
	return NewWriter(os.Stdout, level)
}

// NewWriter is New with an explicit sink, for capturing output in tests.
func NewWriter(out io.Writer, level string) *zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	console := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	logger := zerolog.New(console).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Str("service", "circuitroom").
		Logger()
	return &logger
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

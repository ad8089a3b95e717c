package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds the service logger. Development gets a console writer, everything
// else gets JSON lines on stdout. The global zerolog logger is redirected too.
func New(appEnv, level string) zerolog.Logger {
	var w io.Writer = os.Stdout
	if appEnv != "production" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return NewWithWriter(w, level)
}

// NewWithWriter builds a logger writing to w.
func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	zl := zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
	log.Logger = zl
	return zl
}

// ParseLevel maps a config string to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

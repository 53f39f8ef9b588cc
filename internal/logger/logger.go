package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// serviceName is stamped on every log line so aggregated logs from several
// services stay attributable.
const serviceName = "ticketpulse"

var (
	base zerolog.Logger
	out  io.Writer = os.Stdout
)

// Init configures the global JSON logger.
//
// Environment variables (optional):
//   - LOG_LEVEL: any zerolog level name (default: info)
//   - LOG_PRETTY: true|false (default: false)
func Init() {
	w := out
	if strings.EqualFold(os.Getenv("LOG_PRETTY"), "true") {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	base = zerolog.New(w).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger().
		Level(levelFromEnv())
}

// L returns the global logger. Call Init() once on startup.
func L() *zerolog.Logger {
	if base.GetLevel() == zerolog.NoLevel {
		Init()
	}
	return &base
}

// SetOutput redirects the global logger to w and returns a function that
// restores the previous writer. Intended for tests asserting on emitted log
// lines.
func SetOutput(w io.Writer) (restore func()) {
	prev := out
	out = w
	Init()
	return func() {
		out = prev
		Init()
	}
}

// levelFromEnv resolves LOG_LEVEL; unknown or empty values fall back to info
// rather than failing startup.
func levelFromEnv() zerolog.Level {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if raw == "" {
		return zerolog.InfoLevel
	}
	lv, err := zerolog.ParseLevel(raw)
	if err != nil || lv == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lv
}

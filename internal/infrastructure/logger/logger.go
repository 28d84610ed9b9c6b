package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/BBBmau/realtime-tour-guide-backend/internal/config"
)

// New builds the service logger from configuration and installs it as the
// zerolog global logger. Invalid levels fall back to info.
func New(cfg *config.Config) zerolog.Logger {
	logger, err := NewWithWriter(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, falling back to info/console\n", err)
		logger, _ = NewWithWriter(os.Stdout, "info", "console")
	}

	logger = logger.With().Str("service", cfg.ServiceName).Logger()
	log.Logger = logger
	return logger
}

// NewWithWriter constructs a zerolog logger writing to out with the given
// level and format ("json" or "console").
func NewWithWriter(out io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var writer zerolog.Logger
	switch strings.ToLower(format) {
	case "json":
		writer = zerolog.New(out).With().Timestamp().Logger()
	case "console":
		writer = zerolog.New(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	default:
		return zerolog.Logger{}, fmt.Errorf("unsupported log format %q", format)
	}

	return writer.Level(lvl), nil
}

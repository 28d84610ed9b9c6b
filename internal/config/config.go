package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"

	"github.com/BBBmau/realtime-tour-guide-backend/internal/infrastructure/telemetry"
)

// Config holds all configuration for the tour guide service.
type Config struct {
	// Service settings
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"realtime-tour-guide"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"console"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Request log redaction
	LogPIILevel telemetry.PIILevel `env:"LOG_PII_LEVEL" envDefault:"hashed"`
	LogPIISalt  string             `env:"LOG_PII_SALT"`

	// OpenTelemetry
	EnableTracing bool   `env:"OTEL_ENABLED" envDefault:"false"`
	OTLPEndpoint  string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`

	// OpenAI realtime sessions
	OpenAIAPIKey       string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL      string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	RealtimeModel      string        `env:"REALTIME_MODEL" envDefault:"gpt-4o-mini-realtime-preview"`
	RealtimeVoice      string        `env:"REALTIME_VOICE" envDefault:"verse"`
	TranscriptionModel string        `env:"TRANSCRIPTION_MODEL" envDefault:"whisper-1"`
	UpstreamTimeout    time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"0s"` // 0 disables the client timeout

	// Route notifications
	GoogleMapsAPIKey  string `env:"GOOGLE_MAPS_API_KEY"`
	GoogleMapsBaseURL string `env:"GOOGLE_MAPS_BASE_URL"`
	NarrationModel    string `env:"NARRATION_MODEL" envDefault:"gpt-4"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if cfg.HTTPPort <= 0 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.HTTPPort)
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "console", "json":
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be console or json, got %q", cfg.LogFormat)
	}

	level, err := telemetry.ParsePIILevel(string(cfg.LogPIILevel))
	if err != nil {
		return nil, fmt.Errorf("LOG_PII_LEVEL: %w", err)
	}
	cfg.LogPIILevel = level

	if cfg.UpstreamTimeout < 0 {
		return nil, fmt.Errorf("UPSTREAM_TIMEOUT must not be negative")
	}

	if strings.TrimSpace(cfg.OpenAIBaseURL) == "" {
		return nil, fmt.Errorf("OPENAI_BASE_URL must not be empty")
	}
	cfg.OpenAIBaseURL = strings.TrimRight(cfg.OpenAIBaseURL, "/")

	return cfg, nil
}

// Addr returns the HTTP server address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

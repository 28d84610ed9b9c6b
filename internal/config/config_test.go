package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BBBmau/realtime-tour-guide-backend/internal/infrastructure/telemetry"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVICE_NAME", "PORT", "LOG_LEVEL", "LOG_FORMAT", "OPENAI_API_KEY",
		"OPENAI_BASE_URL", "REALTIME_MODEL", "REALTIME_VOICE", "TRANSCRIPTION_MODEL",
		"UPSTREAM_TIMEOUT", "NARRATION_MODEL", "LOG_PII_LEVEL", "GOOGLE_MAPS_BASE_URL",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAIBaseURL)
	assert.Equal(t, "gpt-4o-mini-realtime-preview", cfg.RealtimeModel)
	assert.Equal(t, "verse", cfg.RealtimeVoice)
	assert.Equal(t, "whisper-1", cfg.TranscriptionModel)
	assert.Equal(t, "gpt-4", cfg.NarrationModel)
	assert.Equal(t, time.Duration(0), cfg.UpstreamTimeout)
	assert.Equal(t, telemetry.PIILevelHashed, cfg.LogPIILevel)
	assert.Empty(t, cfg.OpenAIAPIKey)
	assert.Empty(t, cfg.GoogleMapsBaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:1234/v1/")
	t.Setenv("UPSTREAM_TIMEOUT", "15s")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_PII_LEVEL", "FULL")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "http://localhost:1234/v1", cfg.OpenAIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, telemetry.PIILevelFull, cfg.LogPIILevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port out of range", "PORT", "70000"},
		{"port not a number", "PORT", "http"},
		{"unknown log format", "LOG_FORMAT", "xml"},
		{"negative timeout", "UPSTREAM_TIMEOUT", "-1s"},
		{"unknown pii level", "LOG_PII_LEVEL", "partial"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

package observability

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BBBmau/realtime-tour-guide-backend/internal/config"
)

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		in           string
		wantEndpoint string
		wantInsecure bool
	}{
		{"http://collector:4318", "collector:4318", true},
		{"https://otel.example.com", "otel.example.com", false},
		{"collector:4318", "collector:4318", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			endpoint, insecure := normalizeEndpoint(tt.in)
			assert.Equal(t, tt.wantEndpoint, endpoint)
			assert.Equal(t, tt.wantInsecure, insecure)
		})
	}
}

func TestSetup_Disabled(t *testing.T) {
	cfg := &config.Config{ServiceName: "realtime-tour-guide", Environment: "test"}

	shutdown, err := Setup(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

package session

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/BBBmau/realtime-tour-guide-backend/internal/utils/platformerrors"
)

// Upstream creates realtime sessions on the external API. Implementations
// return the raw JSON body of the upstream response.
type Upstream interface {
	CreateRealtimeSession(ctx context.Context, payload *Payload) (json.RawMessage, error)
}

// Service defines the business operations for realtime sessions.
type Service interface {
	CreateSession(ctx context.Context, params Params) (json.RawMessage, error)
}

type service struct {
	upstream Upstream
	models   Models
	log      zerolog.Logger
}

// NewService creates a new session service.
func NewService(upstream Upstream, models Models, log zerolog.Logger) Service {
	return &service{
		upstream: upstream,
		models:   models.normalized(),
		log:      log.With().Str("component", "session-service").Logger(),
	}
}

// CreateSession builds the prompt for params and forwards it upstream. The
// upstream body is returned untouched.
func (s *service) CreateSession(ctx context.Context, params Params) (json.RawMessage, error) {
	resolved := params.WithDefaults()
	payload := BuildPayload(s.models, resolved)

	s.log.Debug().
		Str("location", resolved.Location).
		Str("destination", resolved.Destination).
		Str("initial_desired_service", resolved.InitialDesiredService).
		Str("model", payload.Model).
		Msg("creating realtime session")

	body, err := s.upstream.CreateRealtimeSession(ctx, payload)
	if err != nil {
		s.log.Warn().Err(err).Msg("realtime session request failed")
		return nil, err
	}

	s.log.Info().
		Str("request_id", platformerrors.RequestIDFromContext(ctx)).
		Int("bytes", len(body)).
		Msg("received realtime session from upstream")

	return body, nil
}

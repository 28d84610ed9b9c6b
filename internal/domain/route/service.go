package route

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BBBmau/realtime-tour-guide-backend/internal/utils/platformerrors"
)

// ErrNoRoutes is returned when the directions provider finds nothing.
var ErrNoRoutes = errors.New("no routes found")

// DirectionsProvider looks up routes between two places.
type DirectionsProvider interface {
	Directions(ctx context.Context, origin, destination string) ([]Route, error)
}

// Narrator turns a route prompt into spoken-style passenger commentary.
type Narrator interface {
	Narrate(ctx context.Context, prompt string) (string, error)
}

// Service builds route notifications.
type Service interface {
	Notification(ctx context.Context, q Query) (string, error)
}

type service struct {
	directions DirectionsProvider
	narrator   Narrator
	log        zerolog.Logger
}

// NewService creates a route notification service. narrator may be nil, in
// which case narration requests fail.
func NewService(directions DirectionsProvider, narrator Narrator, log zerolog.Logger) Service {
	return &service{
		directions: directions,
		narrator:   narrator,
		log:        log.With().Str("component", "route-service").Logger(),
	}
}

func (s *service) Notification(ctx context.Context, q Query) (string, error) {
	origin := strings.TrimSpace(q.CurrentLocation)
	destination := strings.TrimSpace(q.Destination)
	if origin == "" || destination == "" {
		return "", platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"current_location and destination are required", nil)
	}

	routes, err := s.directions.Directions(ctx, origin, destination)
	if err != nil {
		return "", platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to get directions")
	}
	if len(routes) == 0 {
		return "", platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeExternal,
			"failed to get directions", ErrNoRoutes)
	}

	prompt := BuildPrompt(origin, destination, routes[0])
	s.log.Debug().
		Str("origin", origin).
		Str("destination", destination).
		Int("legs", len(routes[0].Legs)).
		Msg("built route prompt")

	if !q.Narrate {
		return prompt, nil
	}

	if s.narrator == nil {
		return "", platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
			"narration is not configured", nil)
	}

	narration, err := s.narrator.Narrate(ctx, prompt)
	if err != nil {
		return "", platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to narrate route")
	}
	return narration, nil
}

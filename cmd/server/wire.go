//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/BBBmau/realtime-tour-guide-backend/internal/config"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/domain/route"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/domain/session"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/infrastructure/maps"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/infrastructure/openai"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/interfaces/httpserver"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/interfaces/httpserver/handlers"
)

// ProviderSet is the wire provider set for the application.
var ProviderSet = wire.NewSet(
	// Infrastructure providers
	ProvideRealtimeClient,
	ProvideDirectionsClient,
	ProvideNarrator,

	// Domain providers
	ProvideSessionService,
	ProvideRouteService,

	// Interface providers
	handlers.HandlerProvider,
	httpserver.New,

	// Application
	NewApplication,
)

// ProvideRealtimeClient provides the OpenAI realtime sessions client.
func ProvideRealtimeClient(cfg *config.Config, log zerolog.Logger) session.Upstream {
	return openai.NewRealtimeClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.UpstreamTimeout, log)
}

// ProvideDirectionsClient provides the Google Directions client.
func ProvideDirectionsClient(cfg *config.Config, log zerolog.Logger) route.DirectionsProvider {
	return maps.NewDirectionsClient(cfg.GoogleMapsAPIKey, cfg.GoogleMapsBaseURL, log)
}

// ProvideNarrator provides the chat-completion narrator.
func ProvideNarrator(cfg *config.Config, log zerolog.Logger) route.Narrator {
	return openai.NewNarrator(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.NarrationModel, log)
}

// ProvideSessionService provides the realtime session service.
func ProvideSessionService(upstream session.Upstream, cfg *config.Config, log zerolog.Logger) session.Service {
	return session.NewService(upstream, session.Models{
		Realtime:      cfg.RealtimeModel,
		Voice:         cfg.RealtimeVoice,
		Transcription: cfg.TranscriptionModel,
	}, log)
}

// ProvideRouteService provides the route notification service.
func ProvideRouteService(directions route.DirectionsProvider, narrator route.Narrator, log zerolog.Logger) route.Service {
	return route.NewService(directions, narrator, log)
}

// CreateApplication creates the application with all dependencies wired.
func CreateApplication(cfg *config.Config, log zerolog.Logger) (*Application, error) {
	wire.Build(ProviderSet)
	return nil, nil
}

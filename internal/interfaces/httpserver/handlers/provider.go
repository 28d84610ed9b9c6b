package handlers

import (
	"github.com/google/wire"

	"github.com/BBBmau/realtime-tour-guide-backend/internal/domain/route"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/domain/session"
)

// Provider holds all HTTP handlers.
type Provider struct {
	Session *SessionHandler
	Route   *RouteHandler
}

// NewProvider creates a new handler provider.
func NewProvider(sessionService session.Service, routeService route.Service) *Provider {
	return &Provider{
		Session: NewSessionHandler(sessionService),
		Route:   NewRouteHandler(routeService),
	}
}

// HandlerProvider provides all handlers for wire.
var HandlerProvider = wire.NewSet(
	NewProvider,
)

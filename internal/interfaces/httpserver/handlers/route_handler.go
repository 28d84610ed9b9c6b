package handlers

import (
	"context"

	"github.com/BBBmau/realtime-tour-guide-backend/internal/domain/route"
)

// RouteHandler handles route notification requests.
type RouteHandler struct {
	service route.Service
}

// NewRouteHandler creates a new route handler.
func NewRouteHandler(service route.Service) *RouteHandler {
	return &RouteHandler{service: service}
}

// Notification returns the route prompt (or its narration) for q.
func (h *RouteHandler) Notification(ctx context.Context, q route.Query) (string, error) {
	return h.service.Notification(ctx, q)
}

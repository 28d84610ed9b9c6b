package handlers

import (
	"context"
	"encoding/json"

	"github.com/BBBmau/realtime-tour-guide-backend/internal/domain/session"
)

// SessionHandler handles session-related HTTP requests.
type SessionHandler struct {
	service session.Service
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(service session.Service) *SessionHandler {
	return &SessionHandler{service: service}
}

// CreateSession creates a realtime session and returns the upstream body.
func (h *SessionHandler) CreateSession(ctx context.Context, params session.Params) (json.RawMessage, error) {
	return h.service.CreateSession(ctx, params)
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BBBmau/realtime-tour-guide-backend/internal/interfaces/httpserver/handlers"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/interfaces/httpserver/routes/tour"
)

// Provider holds all route providers.
type Provider struct {
	Tour *tour.Routes
}

// NewProvider creates a new route provider.
func NewProvider(handlerProvider *handlers.Provider) *Provider {
	return &Provider{
		Tour: tour.NewRoutes(handlerProvider),
	}
}

// Register registers all API routes on the engine.
func (p *Provider) Register(engine *gin.Engine) {
	p.Tour.Register(engine)
}

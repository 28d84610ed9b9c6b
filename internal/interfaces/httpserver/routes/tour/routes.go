package tour

import (
	"github.com/gin-gonic/gin"

	"github.com/BBBmau/realtime-tour-guide-backend/internal/interfaces/httpserver/handlers"
)

// Routes holds the tour guide route configuration.
type Routes struct {
	handlers *handlers.Provider
}

// NewRoutes creates a new tour routes instance.
func NewRoutes(handlerProvider *handlers.Provider) *Routes {
	return &Routes{
		handlers: handlerProvider,
	}
}

// Register registers the tour guide endpoints at the root of router.
func (r *Routes) Register(router gin.IRoutes) {
	RegisterSessionRoutes(router, r.handlers.Session)
	RegisterNotificationRoutes(router, r.handlers.Route)
}

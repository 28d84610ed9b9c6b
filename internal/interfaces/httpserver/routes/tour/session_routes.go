package tour

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BBBmau/realtime-tour-guide-backend/internal/interfaces/httpserver/handlers"
	sessionreq "github.com/BBBmau/realtime-tour-guide-backend/internal/interfaces/httpserver/requests/session"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/interfaces/httpserver/responses"
)

// RegisterSessionRoutes registers the realtime session proxy.
func RegisterSessionRoutes(router gin.IRoutes, handler *handlers.SessionHandler) {
	router.GET("/session", createSession(handler))
}

// createSession godoc
// @Summary      Create a realtime session
// @Description  Builds the road-trip passenger prompt from the query parameters and creates a realtime session upstream. The upstream JSON body is returned as-is.
// @Tags         Realtime
// @Produce      json
// @Param        location                 query string false "Current location"     default(La Jolla, CA)
// @Param        destination              query string false "Trip destination"     default(Irvine, CA)
// @Param        initial_desired_service  query string false "What the rider wants" default(Coffee Shops)
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} responses.ErrorResponse
// @Router       /session [get]
func createSession(handler *handlers.SessionHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query sessionreq.CreateSessionQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			responses.HandleValidationError(c, err)
			return
		}

		body, err := handler.CreateSession(c.Request.Context(), query.ToParams())
		if err != nil {
			responses.HandleError(c, err)
			return
		}

		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
	}
}

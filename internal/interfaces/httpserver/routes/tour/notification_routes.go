package tour

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BBBmau/realtime-tour-guide-backend/internal/interfaces/httpserver/handlers"
	routereq "github.com/BBBmau/realtime-tour-guide-backend/internal/interfaces/httpserver/requests/route"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/interfaces/httpserver/responses"
)

// RegisterNotificationRoutes registers the route notification endpoint.
func RegisterNotificationRoutes(router gin.IRoutes, handler *handlers.RouteHandler) {
	router.GET("/notification", notification(handler))
}

// notification godoc
// @Summary      Route notification
// @Description  Looks up directions between two places and returns a driver prompt describing the route. With narrate=true the prompt is narrated by a chat model.
// @Tags         Routes
// @Produce      plain
// @Param        current_location query string true  "Trip origin"
// @Param        destination      query string true  "Trip destination"
// @Param        narrate          query bool   false "Narrate the route prompt"
// @Success      200 {string} string
// @Failure      400 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Router       /notification [get]
func notification(handler *handlers.RouteHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query routereq.NotificationQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			responses.HandleValidationError(c, err)
			return
		}

		text, err := handler.Notification(c.Request.Context(), query.ToQuery())
		if err != nil {
			responses.HandleError(c, err)
			return
		}

		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
	}
}

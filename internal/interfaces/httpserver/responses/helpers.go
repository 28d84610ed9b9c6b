package responses

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BBBmau/realtime-tour-guide-backend/internal/utils/platformerrors"
)

// HandleError logs err and writes the matching error response.
func HandleError(c *gin.Context, err error) {
	logger := log.With().
		Str("path", c.Request.URL.Path).
		Str("request_id", platformerrors.RequestIDFromContext(c.Request.Context())).
		Logger()

	platformerrors.WriteError(c, err, logger)
}

// HandleValidationError writes a 400 response for malformed input.
func HandleValidationError(c *gin.Context, err error) {
	platformerrors.WriteValidationError(c, err.Error())
}

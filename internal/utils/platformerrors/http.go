package platformerrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HTTPErrorResponse is the error envelope returned by every endpoint.
type HTTPErrorResponse struct {
	Error string `json:"error"`
}

// WriteError writes err as an HTTP response. Platform errors are logged and
// mapped by type; anything else is an internal error.
func WriteError(c *gin.Context, err error, log zerolog.Logger) {
	if err == nil {
		c.JSON(http.StatusInternalServerError, HTTPErrorResponse{Error: "unknown error"})
		return
	}

	platformErr := GetPlatformError(err)
	if platformErr == nil {
		log.Error().Err(err).Msg("unhandled error")
		c.JSON(http.StatusInternalServerError, HTTPErrorResponse{Error: err.Error()})
		return
	}

	LogError(log, platformErr)
	c.JSON(ErrorTypeToHTTPStatus(platformErr.Type), HTTPErrorResponse{Error: platformErr.Description()})
}

// WriteValidationError writes a 400 Bad Request response.
func WriteValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, HTTPErrorResponse{Error: message})
}

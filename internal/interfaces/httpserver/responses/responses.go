// Package responses contains HTTP response DTOs and error helpers.
package responses

// ErrorResponse is the error envelope: {"error": "<message>"}.
type ErrorResponse struct {
	Error string `json:"error" example:"realtime session request failed: connection refused"`
}

// StatusResponse is returned by health endpoints.
type StatusResponse struct {
	Status string `json:"status" example:"healthy"`
}

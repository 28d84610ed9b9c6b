package middlewares

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BBBmau/realtime-tour-guide-backend/internal/infrastructure/telemetry"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/utils/platformerrors"
)

func newTestEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(mw...)
	return engine
}

func TestRequestID_Propagates(t *testing.T) {
	engine := newTestEngine(RequestID())
	var fromContext string
	engine.GET("/ping", func(c *gin.Context) {
		fromContext = platformerrors.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "trace-me")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, "trace-me", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "trace-me", fromContext)
}

func TestRequestID_Generates(t *testing.T) {
	engine := newTestEngine(RequestID())
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestCORS_Preflight(t *testing.T) {
	engine := newTestEngine(CORS())
	engine.GET("/session", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/session", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "43200", w.Header().Get("Access-Control-Max-Age"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), RequestIDHeader)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	engine := newTestEngine(RequestID(), RequestLogger(log, nil))
	engine.GET("/session", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/session?location=Ojai", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "/session", entry["path"])
	assert.Equal(t, "location=Ojai", entry["query"])
	assert.EqualValues(t, 500, entry["status"])
	assert.NotEmpty(t, entry["request_id"])
}

func TestRequestLogger_SanitizesQuery(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	engine := newTestEngine(RequestLogger(log, telemetry.NewSanitizer(telemetry.PIILevelNone, "")))
	engine.GET("/session", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/session?location=Ojai", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "location=%5BREDACTED%5D", entry["query"])
}

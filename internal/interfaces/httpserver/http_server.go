package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/BBBmau/realtime-tour-guide-backend/docs/swagger"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/config"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/infrastructure/telemetry"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/interfaces/httpserver/handlers"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/interfaces/httpserver/middlewares"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/interfaces/httpserver/responses"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/interfaces/httpserver/routes"
)

// Greeting is the body served at the root path.
const Greeting = "Hello World"

// HTTPServer is the HTTP server for the tour guide API.
type HTTPServer struct {
	cfg    *config.Config
	engine *gin.Engine
	log    zerolog.Logger
}

// New creates a new HTTP server.
func New(cfg *config.Config, log zerolog.Logger, handlerProvider *handlers.Provider) *HTTPServer {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.Use(middlewares.RequestID())
	engine.Use(middlewares.Tracing(cfg.ServiceName))
	engine.Use(middlewares.Metrics())
	engine.Use(middlewares.CORS())
	engine.Use(middlewares.RequestLogger(log, telemetry.NewSanitizer(cfg.LogPIILevel, cfg.LogPIISalt)))

	registerCoreRoutes(engine)
	routes.NewProvider(handlerProvider).Register(engine)

	return &HTTPServer{
		cfg:    cfg,
		engine: engine,
		log:    log,
	}
}

// Handler exposes the configured engine, mainly for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// listener fails.
func (s *HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr()).Msgf("Server running on http://localhost%s", s.cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.log.Info().Msg("context cancelled, shutting down HTTP server")
	case err := <-errCh:
		if err != nil {
			s.log.Error().Err(err).Msg("HTTP server error")
		}
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func registerCoreRoutes(engine *gin.Engine) {
	engine.GET("/", greeting)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, responses.StatusResponse{Status: "healthy"})
	})

	engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, responses.StatusResponse{Status: "ready"})
	})

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// greeting godoc
// @Summary  Greeting
// @Tags     Core
// @Produce  plain
// @Success  200 {string} string "Hello World"
// @Router   / [get]
func greeting(c *gin.Context) {
	c.String(http.StatusOK, Greeting)
}

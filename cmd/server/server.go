// @title           Realtime Tour Guide API
// @version         1.0
// @description     Backend for a voice road-trip companion.
// @description     Mints OpenAI realtime sessions primed with a trip-aware prompt and builds route notifications from Google Directions.

// @license.name  MIT

// @host      localhost:8080
// @BasePath  /

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/BBBmau/realtime-tour-guide-backend/internal/config"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/domain/route"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/domain/session"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/infrastructure/logger"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/infrastructure/maps"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/infrastructure/observability"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/infrastructure/openai"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/interfaces/httpserver"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/interfaces/httpserver/handlers"
)

// Application holds the main application components.
type Application struct {
	httpServer *httpserver.HTTPServer
	log        zerolog.Logger
}

// NewApplication creates a new application instance.
func NewApplication(httpServer *httpserver.HTTPServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

// Start runs the HTTP server until ctx is cancelled.
func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shutdown telemetry")
		}
	}()

	if cfg.OpenAIAPIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is not set, upstream calls will be rejected")
	}

	// Realtime sessions
	realtimeClient := openai.NewRealtimeClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.UpstreamTimeout, log)
	sessionService := session.NewService(realtimeClient, session.Models{
		Realtime:      cfg.RealtimeModel,
		Voice:         cfg.RealtimeVoice,
		Transcription: cfg.TranscriptionModel,
	}, log)

	// Route notifications
	directions := maps.NewDirectionsClient(cfg.GoogleMapsAPIKey, cfg.GoogleMapsBaseURL, log)
	narrator := openai.NewNarrator(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.NarrationModel, log)
	routeService := route.NewService(directions, narrator, log)

	httpServer := httpserver.New(cfg, log, handlers.NewProvider(sessionService, routeService))

	app := NewApplication(httpServer, log)

	log.Info().
		Str("service", cfg.ServiceName).
		Int("port", cfg.HTTPPort).
		Str("environment", cfg.Environment).
		Msg("Starting server...")

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env", "../../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}

package maps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gmaps "googlemaps.github.io/maps"

	"github.com/BBBmau/realtime-tour-guide-backend/internal/domain/route"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/infrastructure/metrics"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/utils/platformerrors"
)

// ErrMissingAPIKey is returned for every lookup when no API key is configured.
var ErrMissingAPIKey = errors.New("GOOGLE_MAPS_API_KEY is not set")

// DirectionsClient implements route.DirectionsProvider with the Google Maps
// Directions API.
type DirectionsClient struct {
	client  *gmaps.Client
	initErr error
	log     zerolog.Logger
}

// NewDirectionsClient creates a directions client. Construction never fails;
// configuration problems are reported on each lookup so the service can start
// without a maps key. baseURL overrides the API host when non-empty.
func NewDirectionsClient(apiKey, baseURL string, log zerolog.Logger) *DirectionsClient {
	d := &DirectionsClient{log: log.With().Str("component", "google-directions").Logger()}

	if apiKey == "" {
		d.initErr = ErrMissingAPIKey
		d.log.Warn().Msg("google maps api key not configured, route notifications are disabled")
		return d
	}

	opts := []gmaps.ClientOption{gmaps.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, gmaps.WithBaseURL(baseURL))
	}

	client, err := gmaps.NewClient(opts...)
	if err != nil {
		d.initErr = fmt.Errorf("failed to create maps client: %w", err)
		return d
	}
	d.client = client
	return d
}

// Directions returns the routes between origin and destination.
func (d *DirectionsClient) Directions(ctx context.Context, origin, destination string) ([]route.Route, error) {
	if d.initErr != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeInternal,
			"directions unavailable", d.initErr)
	}

	start := time.Now()
	routes, _, err := d.client.Directions(ctx, &gmaps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
	})
	metrics.RecordUpstream(metrics.UpstreamDirections, err, time.Since(start).Seconds())
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			"directions request failed", err)
	}

	return toDomainRoutes(routes), nil
}

func toDomainRoutes(routes []gmaps.Route) []route.Route {
	result := make([]route.Route, 0, len(routes))
	for _, r := range routes {
		converted := route.Route{Summary: r.Summary}
		for _, leg := range r.Legs {
			if leg == nil {
				continue
			}
			domainLeg := route.Leg{
				Distance: leg.Distance.HumanReadable,
				Duration: leg.Duration,
			}
			for _, step := range leg.Steps {
				if step == nil {
					continue
				}
				domainLeg.Steps = append(domainLeg.Steps, route.Step{Instructions: step.HTMLInstructions})
			}
			converted.Legs = append(converted.Legs, domainLeg)
		}
		result = append(result, converted)
	}
	return result
}

// Ensure interface compliance.
var _ route.DirectionsProvider = (*DirectionsClient)(nil)

package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/BBBmau/realtime-tour-guide-backend/internal/domain/session"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/infrastructure/metrics"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/utils/platformerrors"
)

const realtimeSessionsPath = "/realtime/sessions"

// RealtimeClient implements session.Upstream against the OpenAI realtime
// sessions endpoint.
type RealtimeClient struct {
	httpClient *resty.Client
	log        zerolog.Logger
}

// NewRealtimeClient creates a Resty-backed client. A zero timeout leaves
// outbound calls unbounded.
func NewRealtimeClient(baseURL, apiKey string, timeout time.Duration, log zerolog.Logger) *RealtimeClient {
	log = log.With().Str("component", "openai-realtime").Logger()

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+apiKey).
		SetLogger(restyLogger{log: log})
	if timeout > 0 {
		httpClient.SetTimeout(timeout)
	}

	return &RealtimeClient{
		httpClient: httpClient,
		log:        log,
	}
}

// CreateRealtimeSession posts payload and returns the upstream JSON body.
// The upstream status code is not interpreted: any body that parses as JSON
// is returned to the caller.
func (c *RealtimeClient) CreateRealtimeSession(ctx context.Context, payload *session.Payload) (json.RawMessage, error) {
	start := time.Now()
	body, err := c.post(ctx, payload)
	metrics.RecordUpstream(metrics.UpstreamRealtime, err, time.Since(start).Seconds())
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			"realtime session request failed", err)
	}
	return body, nil
}

func (c *RealtimeClient) post(ctx context.Context, payload *session.Payload) (json.RawMessage, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(realtimeSessionsPath)
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		c.log.Warn().
			Int("status", resp.StatusCode()).
			Str("request_id", platformerrors.RequestIDFromContext(ctx)).
			Msg("upstream returned non-success status")
	}

	var body json.RawMessage
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", resp.StatusCode(), err)
	}
	return body, nil
}

// Ensure interface compliance.
var _ session.Upstream = (*RealtimeClient)(nil)

// restyLogger routes Resty's internal logging through zerolog.
type restyLogger struct {
	log zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) { l.log.Error().Msgf(format, v...) }
func (l restyLogger) Warnf(format string, v ...interface{})  { l.log.Warn().Msgf(format, v...) }
func (l restyLogger) Debugf(format string, v ...interface{}) { l.log.Debug().Msgf(format, v...) }

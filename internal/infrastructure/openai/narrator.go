package openai

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	goopenai "github.com/sashabaranov/go-openai"

	"github.com/BBBmau/realtime-tour-guide-backend/internal/domain/route"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/infrastructure/metrics"
	"github.com/BBBmau/realtime-tour-guide-backend/internal/utils/platformerrors"
)

var errEmptyCompletion = errors.New("empty completion")

// Narrator implements route.Narrator with a single chat completion.
type Narrator struct {
	client *goopenai.Client
	model  string
	log    zerolog.Logger
}

// NewNarrator creates a chat completion narrator for the given model.
func NewNarrator(baseURL, apiKey, model string, log zerolog.Logger) *Narrator {
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &Narrator{
		client: goopenai.NewClientWithConfig(cfg),
		model:  model,
		log:    log.With().Str("component", "openai-narrator").Logger(),
	}
}

// Narrate sends prompt as a user message and returns the first choice.
func (n *Narrator) Narrate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	content, err := n.complete(ctx, prompt)
	metrics.RecordUpstream(metrics.UpstreamChat, err, time.Since(start).Seconds())
	if err != nil {
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			"chat completion failed", err)
	}
	return content, nil
}

func (n *Narrator) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := n.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: n.model,
		Messages: []goopenai.ChatCompletionMessage{
			{
				Role:    goopenai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyCompletion
	}

	n.log.Debug().
		Str("model", resp.Model).
		Int("total_tokens", resp.Usage.TotalTokens).
		Msg("narration completed")

	return resp.Choices[0].Message.Content, nil
}

// Ensure interface compliance.
var _ route.Narrator = (*Narrator)(nil)

package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BBBmau/realtime-tour-guide-backend/internal/utils/platformerrors"
)

func TestNarrator_Narrate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "route prompt", req.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Look left for the pier!"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 3, "completion_tokens": 5, "total_tokens": 8}
		}`))
	}))
	defer server.Close()

	narrator := NewNarrator(server.URL+"/v1", "sk-test", "gpt-4", zerolog.Nop())

	got, err := narrator.Narrate(context.Background(), "route prompt")
	require.NoError(t, err)
	assert.Equal(t, "Look left for the pier!", got)
}

func TestNarrator_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"no choices", http.StatusOK, `{"id":"chatcmpl-1","object":"chat.completion","choices":[]}`},
		{"api error", http.StatusTooManyRequests, `{"error":{"message":"Rate limit reached","type":"requests"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			narrator := NewNarrator(server.URL+"/v1", "sk-test", "gpt-4", zerolog.Nop())
			_, err := narrator.Narrate(context.Background(), "route prompt")

			require.Error(t, err)
			assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal))
		})
	}
}

package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docscan/internal/config"
	"docscan/internal/generation"
	"docscan/internal/generation/openai"
	"docscan/internal/port"
)

func newTestGenerator(serverURL string) *openai.Generator {
	cfg := &config.GenerationConfig{
		Provider:    "openai",
		APIKey:      "test-api-key",
		Model:       "gpt-4o",
		TimeoutSecs: 5,
	}
	return openai.NewGeneratorWithEndpoint(cfg, serverURL)
}

func TestOpenAIGenerator_Generate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "gpt-4o", reqBody["model"])
		assert.Equal(t, float64(800), reqBody["max_tokens"])

		messages := reqBody["messages"].([]interface{})
		require.Len(t, messages, 1)
		msg := messages[0].(map[string]interface{})
		assert.Equal(t, "user", msg["role"])
		assert.Equal(t, "the prompt", msg["content"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{
					"message":       map[string]interface{}{"content": `{"name":"Sara"}`},
					"finish_reason": "stop",
				},
			},
		})
	}))
	defer server.Close()

	out, err := newTestGenerator(server.URL).Generate(context.Background(), port.GenerationRequest{
		Prompt:    "the prompt",
		MaxTokens: 800,
	})

	require.NoError(t, err)
	assert.Equal(t, `{"name":"Sara"}`, out)
}

func TestOpenAIGenerator_Generate_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestGenerator(server.URL).Generate(context.Background(), port.GenerationRequest{Prompt: "p"})

	var rlErr *generation.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "openai", rlErr.Provider)
}

func TestOpenAIGenerator_Generate_Truncated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{"},"finish_reason":"length"}]}`))
	}))
	defer server.Close()

	_, err := newTestGenerator(server.URL).Generate(context.Background(), port.GenerationRequest{Prompt: "p"})

	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrTruncated)
}

func TestOpenAIGenerator_Generate_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	_, err := newTestGenerator(server.URL).Generate(context.Background(), port.GenerationRequest{Prompt: "p"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"docscan/internal/config"
	"docscan/internal/generation"
	"docscan/internal/port"
)

const (
	apiURL       = "https://api.cohere.ai/v1/generate"
	defaultModel = "command-r-plus"
)

// Generator implements port.TextGenerator using the Cohere Generate API.
type Generator struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewGenerator creates a Cohere-backed text generator.
func NewGenerator(cfg *config.GenerationConfig) *Generator {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = apiURL
	}
	return newGenerator(cfg, endpoint)
}

// NewGeneratorWithEndpoint creates a generator pointing at a custom API endpoint (for testing).
func NewGeneratorWithEndpoint(cfg *config.GenerationConfig, endpoint string) *Generator {
	return newGenerator(cfg, endpoint)
}

func newGenerator(cfg *config.GenerationConfig, endpoint string) *Generator {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Generator{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (g *Generator) Generate(ctx context.Context, in port.GenerationRequest) (string, error) {
	model := in.Model
	if model == "" {
		model = g.model
	}

	reqBody := map[string]interface{}{
		"model":       model,
		"prompt":      in.Prompt,
		"max_tokens":  in.MaxTokens,
		"temperature": in.Temperature,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling cohere API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		baseErr := fmt.Errorf("cohere API error (status %d): %s", resp.StatusCode, generation.Truncate(string(respBody), 500))
		if resp.StatusCode == http.StatusTooManyRequests {
			return "", generation.NewRateLimitError("cohere", baseErr, generation.RetryAfter(resp.Header, time.Now()))
		}
		return "", baseErr
	}

	return parseResponse(respBody)
}

// apiResponse models the Cohere Generate API response.
type apiResponse struct {
	Generations []struct {
		Text         string `json:"text"`
		FinishReason string `json:"finish_reason"`
	} `json:"generations"`
}

func parseResponse(body []byte) (string, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}

	if len(resp.Generations) == 0 {
		return "", fmt.Errorf("empty response from API: no generations")
	}

	if resp.Generations[0].FinishReason == "MAX_TOKENS" {
		return "", fmt.Errorf("%w (finish_reason: MAX_TOKENS)", generation.ErrTruncated)
	}

	return resp.Generations[0].Text, nil
}

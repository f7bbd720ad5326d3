// Package vision detects text in images with the Google Cloud Vision REST API.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"docscan/internal/config"
	"docscan/internal/domain"
	"docscan/internal/generation"
)

const apiURL = "https://vision.googleapis.com/v1/images:annotate"

// Detector implements port.TextDetector.
type Detector struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewDetector creates a Cloud Vision text detector.
func NewDetector(cfg *config.OCRConfig) *Detector {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = apiURL
	}
	return NewDetectorWithEndpoint(cfg, endpoint)
}

// NewDetectorWithEndpoint creates a detector pointing at a custom API endpoint (for testing).
func NewDetectorWithEndpoint(cfg *config.OCRConfig, endpoint string) *Detector {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Detector{
		apiKey:   cfg.APIKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (d *Detector) DetectText(ctx context.Context, image []byte) (*domain.OCRResult, error) {
	reqBody := map[string]interface{}{
		"requests": []map[string]interface{}{
			{
				"image": map[string]string{
					"content": base64.StdEncoding.EncodeToString(image),
				},
				"features": []map[string]string{
					{"type": "DOCUMENT_TEXT_DETECTION"},
					{"type": "TEXT_DETECTION"},
				},
			},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := d.endpoint
	if d.apiKey != "" {
		url += "?key=" + d.apiKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling vision API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision API error (status %d): %s", resp.StatusCode, generation.Truncate(string(respBody), 500))
	}

	text, err := parseResponse(respBody)
	if err != nil {
		return nil, err
	}
	result := domain.NewOCRResult(text)
	return &result, nil
}

// annotateResponse models the subset of the images:annotate response we read.
type annotateResponse struct {
	Responses []struct {
		FullTextAnnotation *struct {
			Text string `json:"text"`
		} `json:"fullTextAnnotation"`
		TextAnnotations []struct {
			Description string `json:"description"`
		} `json:"textAnnotations"`
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	} `json:"responses"`
}

func parseResponse(body []byte) (string, error) {
	var resp annotateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}

	// An image with no text yields an empty response object, not an error.
	if len(resp.Responses) == 0 {
		return "", nil
	}

	r := resp.Responses[0]
	if r.Error != nil && r.Error.Message != "" {
		return "", fmt.Errorf("vision API error (code %d): %s", r.Error.Code, r.Error.Message)
	}
	if r.FullTextAnnotation != nil && r.FullTextAnnotation.Text != "" {
		return r.FullTextAnnotation.Text, nil
	}
	if len(r.TextAnnotations) > 0 {
		return r.TextAnnotations[0].Description, nil
	}
	return "", nil
}

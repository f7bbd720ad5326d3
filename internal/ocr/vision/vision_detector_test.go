package vision_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docscan/internal/config"
	"docscan/internal/ocr/vision"
)

func newTestDetector(serverURL string) *vision.Detector {
	return vision.NewDetectorWithEndpoint(&config.OCRConfig{APIKey: "vision-key", TimeoutSecs: 5}, serverURL)
}

func TestDetectText_FullTextAnnotation(t *testing.T) {
	image := []byte{0xFF, 0xD8, 0xFF, 0xE0}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "vision-key", r.URL.Query().Get("key"))

		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		requests := reqBody["requests"].([]interface{})
		first := requests[0].(map[string]interface{})
		img := first["image"].(map[string]interface{})
		assert.Equal(t, base64.StdEncoding.EncodeToString(image), img["content"])
		features := first["features"].([]interface{})
		assert.Equal(t, "DOCUMENT_TEXT_DETECTION", features[0].(map[string]interface{})["type"])

		_, _ = w.Write([]byte(`{"responses":[{"fullTextAnnotation":{"text":"National Identity Card\n35201-1234567-1"},"textAnnotations":[{"description":"ignored"}]}]}`))
	}))
	defer server.Close()

	res, err := newTestDetector(server.URL).DetectText(context.Background(), image)

	require.NoError(t, err)
	assert.True(t, res.HasText)
	assert.Equal(t, "National Identity Card\n35201-1234567-1", res.FullText)
}

func TestDetectText_FallsBackToTextAnnotations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"responses":[{"textAnnotations":[{"description":"Domicile Certificate"},{"description":"Domicile"}]}]}`))
	}))
	defer server.Close()

	res, err := newTestDetector(server.URL).DetectText(context.Background(), []byte("img"))

	require.NoError(t, err)
	assert.True(t, res.HasText)
	assert.Equal(t, "Domicile Certificate", res.FullText)
}

func TestDetectText_NoText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"responses":[{}]}`))
	}))
	defer server.Close()

	res, err := newTestDetector(server.URL).DetectText(context.Background(), []byte("img"))

	require.NoError(t, err)
	assert.False(t, res.HasText)
	assert.Empty(t, res.FullText)
}

func TestDetectText_PerImageError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"responses":[{"error":{"code":3,"message":"Bad image data."}}]}`))
	}))
	defer server.Close()

	_, err := newTestDetector(server.URL).DetectText(context.Background(), []byte("img"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bad image data.")
}

func TestDetectText_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
	}))
	defer server.Close()

	_, err := newTestDetector(server.URL).DetectText(context.Background(), []byte("img"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

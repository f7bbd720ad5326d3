package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docscan/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, int64(10), cfg.Server.MaxImageSizeMB)
	assert.Equal(t, int64(10<<20), cfg.Server.MaxImageBytes())
	assert.Equal(t, "cohere", cfg.Generation.Provider)
	assert.Empty(t, cfg.Generation.Model)
	assert.InDelta(t, 0.1, cfg.Generation.Temperature, 1e-9)
	assert.Equal(t, 30, cfg.OCR.TimeoutSecs)
	assert.Equal(t, "local", cfg.Staging.Backend)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DOCSCAN_GENERATION_PROVIDER", "openai")
	t.Setenv("DOCSCAN_GENERATION_MODEL", "gpt-4o-mini")
	t.Setenv("DOCSCAN_GENERATION_REQUESTS_PER_MINUTE", "20")
	t.Setenv("DOCSCAN_STAGING_BACKEND", "s3")
	t.Setenv("DOCSCAN_S3_BUCKET", "scans")
	t.Setenv("DOCSCAN_CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.Generation.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Generation.Model)
	assert.Equal(t, 20, cfg.Generation.RequestsPerMinute)
	assert.Equal(t, "s3", cfg.Staging.Backend)
	assert.Equal(t, "scans", cfg.S3.Bucket)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPort(t *testing.T) {
	t.Setenv("PORT", "8081")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.Server.Port)

	t.Setenv("DOCSCAN_SERVER_PORT", ":9000")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Port)
}

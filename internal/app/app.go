// Package app wires configuration into the pipeline and HTTP server.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"docscan/internal/config"
	"docscan/internal/extraction"
	"docscan/internal/generation"
	"docscan/internal/generation/claude"
	"docscan/internal/generation/cohere"
	"docscan/internal/generation/gemini"
	"docscan/internal/generation/openai"
	"docscan/internal/handler"
	"docscan/internal/ocr/vision"
	"docscan/internal/pipeline"
	"docscan/internal/port"
	"docscan/internal/router"
	"docscan/internal/storage/local"
	s3stager "docscan/internal/storage/s3"
)

// RegisterProviders registers every built-in generation provider.
func RegisterProviders() {
	generation.RegisterProvider("cohere", func(cfg *config.GenerationConfig) (port.TextGenerator, error) {
		return cohere.NewGenerator(cfg), nil
	})
	generation.RegisterProvider("openai", func(cfg *config.GenerationConfig) (port.TextGenerator, error) {
		return openai.NewGenerator(cfg), nil
	})
	generation.RegisterProvider("gemini", func(cfg *config.GenerationConfig) (port.TextGenerator, error) {
		return gemini.NewGenerator(cfg), nil
	})
	generation.RegisterProvider("claude", func(cfg *config.GenerationConfig) (port.TextGenerator, error) {
		return claude.NewGenerator(cfg), nil
	})
}

// Components holds the capability objects built at process start.
type Components struct {
	Pipeline *pipeline.Coordinator
	Checks   map[string]port.HealthChecker
}

// Build constructs the pipeline. With images false the OCR detector and the
// staging area are left out, which is enough for text-only use.
func Build(ctx context.Context, cfg *config.Config, log zerolog.Logger, images bool) (*Components, error) {
	if cfg.Generation.APIKey == "" {
		log.Warn().Str("provider", cfg.Generation.Provider).Msg("no generation API key set; extraction will use pattern fallback")
	}
	gen, err := generation.New(&cfg.Generation, log)
	if err != nil {
		return nil, fmt.Errorf("creating text generator: %w", err)
	}

	orch, err := extraction.NewOrchestrator(gen, extraction.Config{
		Model:       cfg.Generation.Model,
		Temperature: cfg.Generation.Temperature,
	}, log)
	if err != nil {
		return nil, err
	}

	checks := map[string]port.HealthChecker{}
	var (
		detector port.TextDetector
		staging  port.ObjectStorage
		stageCfg pipeline.StagingConfig
	)
	if images {
		if cfg.OCR.APIKey == "" && cfg.OCR.Endpoint == "" {
			log.Warn().Msg("no OCR API key set; image endpoints will fail")
		}
		detector = vision.NewDetector(&cfg.OCR)

		staging, stageCfg, err = newStaging(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if hc, ok := staging.(port.HealthChecker); ok {
			checks["staging"] = hc
		}
	}

	return &Components{
		Pipeline: pipeline.NewCoordinator(orch, detector, staging, stageCfg, log),
		Checks:   checks,
	}, nil
}

func newStaging(ctx context.Context, cfg *config.Config) (port.ObjectStorage, pipeline.StagingConfig, error) {
	stageCfg := pipeline.StagingConfig{Prefix: cfg.Staging.Prefix}
	switch cfg.Staging.Backend {
	case "", "none":
		return nil, stageCfg, nil
	case "local":
		stager, err := local.NewStager(cfg.Staging.Dir)
		if err != nil {
			return nil, stageCfg, fmt.Errorf("initializing local staging: %w", err)
		}
		return stager, stageCfg, nil
	case "s3":
		stager, err := s3stager.NewStager(ctx, &cfg.S3)
		if err != nil {
			return nil, stageCfg, fmt.Errorf("initializing S3 staging: %w", err)
		}
		stageCfg.Bucket = cfg.S3.Bucket
		return stager, stageCfg, nil
	default:
		return nil, stageCfg, fmt.Errorf("unknown staging backend: %s", cfg.Staging.Backend)
	}
}

// NewServer builds the HTTP server around the pipeline.
func NewServer(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*http.Server, error) {
	comps, err := Build(ctx, cfg, log, true)
	if err != nil {
		return nil, err
	}

	maxImage := cfg.Server.MaxImageBytes()
	extractH := handler.NewExtractHandler(comps.Pipeline, maxImage, log)
	healthH := handler.NewHealthHandler(comps.Checks)

	engine := router.Setup(log, router.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		// base64 inflates by 4/3; leave room for the JSON envelope.
		MaxBodyBytes: maxImage*4/3 + 1<<20,
	}, extractH, healthH)

	return &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, nil
}

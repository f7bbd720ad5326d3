// Package extraction turns classified OCR text into a structured record by
// prompting a text-generation service, falling back to pattern matching when
// the service fails or answers with something unusable.
package extraction

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"docscan/internal/docclass"
	"docscan/internal/domain"
	"docscan/internal/fallback"
	"docscan/internal/port"
	"docscan/internal/sanitizer"
)

// Config holds the generation parameters used for every extraction.
type Config struct {
	Model       string
	Temperature float64
}

// Extractor produces a sanitized record for text of a known class.
type Extractor interface {
	Extract(ctx context.Context, d *docclass.Descriptor, text string) domain.ExtractedRecord
}

// Orchestrator is the generation-backed Extractor.
type Orchestrator struct {
	gen    port.TextGenerator
	parser *ResponseParser
	cfg    Config
	log    zerolog.Logger
}

// NewOrchestrator creates an Orchestrator around a text generator.
func NewOrchestrator(gen port.TextGenerator, cfg Config, log zerolog.Logger) (*Orchestrator, error) {
	parser, err := NewResponseParser()
	if err != nil {
		return nil, fmt.Errorf("creating response parser: %w", err)
	}
	return &Orchestrator{gen: gen, parser: parser, cfg: cfg, log: log}, nil
}

// Extract makes exactly one generation call. A failed call or an unusable
// completion is logged and replaced by the fallback extractor's record; the
// result is always sanitized.
func (o *Orchestrator) Extract(ctx context.Context, d *docclass.Descriptor, text string) domain.ExtractedRecord {
	log := o.log.With().Str("document_class", string(d.Class)).Logger()

	completion, err := o.gen.Generate(ctx, port.GenerationRequest{
		Model:       o.cfg.Model,
		Prompt:      BuildPrompt(d, text),
		MaxTokens:   d.MaxTokens,
		Temperature: o.cfg.Temperature,
	})
	if err != nil {
		log.Warn().Err(err).Msg("generation failed, using fallback extraction")
		return sanitizer.Sanitize(d, fallback.Extract(d, text))
	}

	switch res := o.parser.Parse(d, completion).(type) {
	case Parsed:
		log.Debug().Int("confidence_score", res.Confidence).Msg("extracted fields from completion")
		return sanitizer.Sanitize(d, domain.ExtractedRecord{
			Class:           d.Class,
			Fields:          res.Fields,
			ConfidenceScore: res.Confidence,
			Source:          domain.SourcePrimary,
		})
	case Unparsable:
		log.Warn().Str("reason", res.Reason).Msg("unusable completion, using fallback extraction")
	}
	return sanitizer.Sanitize(d, fallback.Extract(d, text))
}

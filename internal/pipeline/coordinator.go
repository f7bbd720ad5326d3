// Package pipeline runs a request end to end: optional image staging and OCR,
// classification, then extraction for accepted documents.
package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"docscan/internal/classifier"
	"docscan/internal/docclass"
	"docscan/internal/domain"
	"docscan/internal/extraction"
	"docscan/internal/port"
)

// Image is an uploaded document image.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Service defines the pipeline operations used by the transport layers.
type Service interface {
	Process(ctx context.Context, class domain.DocumentClass, ocr domain.OCRResult) (*domain.PipelineResult, error)
	ProcessImage(ctx context.Context, class domain.DocumentClass, img Image) (*domain.PipelineResult, error)
	Detect(ctx context.Context, ocr domain.OCRResult) (*domain.PipelineResult, error)
}

// StagingConfig selects where uploaded images are staged before OCR.
type StagingConfig struct {
	Bucket string
	Prefix string
}

// Coordinator implements Service. Staging is optional; without it images go
// straight to the text detector.
type Coordinator struct {
	extractor extraction.Extractor
	detector  port.TextDetector
	staging   port.ObjectStorage
	stageCfg  StagingConfig
	log       zerolog.Logger
}

// NewCoordinator creates a Coordinator. detector and staging may be nil when
// only text input is processed.
func NewCoordinator(
	extractor extraction.Extractor,
	detector port.TextDetector,
	staging port.ObjectStorage,
	stageCfg StagingConfig,
	log zerolog.Logger,
) *Coordinator {
	return &Coordinator{
		extractor: extractor,
		detector:  detector,
		staging:   staging,
		stageCfg:  stageCfg,
		log:       log,
	}
}

// Process classifies OCR text as class and extracts its fields when it
// matches. A negative verdict is returned both as the result and as a
// *domain.RejectionError.
func (c *Coordinator) Process(ctx context.Context, class domain.DocumentClass, ocr domain.OCRResult) (*domain.PipelineResult, error) {
	if !ocr.HasText {
		return nil, domain.ErrNoTextDetected
	}

	d, err := docclass.Lookup(class)
	if err != nil {
		return nil, err
	}

	verdict := classifier.Classify(d, ocr.FullText)
	return c.finish(ctx, d, verdict, ocr.FullText)
}

// Detect picks the best matching class for the text, then extracts it.
func (c *Coordinator) Detect(ctx context.Context, ocr domain.OCRResult) (*domain.PipelineResult, error) {
	if !ocr.HasText {
		return nil, domain.ErrNoTextDetected
	}

	det := classifier.Detect(ocr.FullText)
	if !det.Matched() {
		c.log.Info().Msg("no document class matched")
		return rejected("", det.Verdict, ocr.FullText)
	}
	return c.finish(ctx, docclass.MustLookup(det.Class), det.Verdict, ocr.FullText)
}

func (c *Coordinator) finish(ctx context.Context, d *docclass.Descriptor, verdict domain.Verdict, text string) (*domain.PipelineResult, error) {
	if !verdict.Matches {
		c.log.Info().
			Str("document_class", string(d.Class)).
			Interface("reasons", verdict.Reasons).
			Msg("classification rejected")
		return rejected(d.Class, verdict, text)
	}

	rec := c.extractor.Extract(ctx, d, text)
	c.log.Info().
		Str("document_class", string(d.Class)).
		Int("confidence", verdict.Confidence).
		Str("extraction_source", string(rec.Source)).
		Int("confidence_score", rec.ConfidenceScore).
		Msg("document processed")

	return &domain.PipelineResult{
		Class:      d.Class,
		Matches:    true,
		Confidence: verdict.Confidence,
		Reasons:    verdict.Reasons,
		Record:     &rec,
		RawText:    text,
	}, nil
}

func rejected(class domain.DocumentClass, verdict domain.Verdict, text string) (*domain.PipelineResult, error) {
	result := &domain.PipelineResult{
		Class:      class,
		Matches:    false,
		Confidence: 0,
		Reasons:    verdict.Reasons,
		RawText:    text,
	}
	return result, &domain.RejectionError{Class: class, Verdict: verdict}
}

// ProcessImage stages the image, runs OCR on the staged copy, removes it and
// then processes the recovered text.
func (c *Coordinator) ProcessImage(ctx context.Context, class domain.DocumentClass, img Image) (*domain.PipelineResult, error) {
	if len(img.Data) == 0 {
		return nil, domain.ErrMissingImage
	}
	if _, err := docclass.Lookup(class); err != nil {
		return nil, err
	}

	ocr, err := c.recognize(ctx, img)
	if err != nil {
		return nil, err
	}
	return c.Process(ctx, class, *ocr)
}

func (c *Coordinator) recognize(ctx context.Context, img Image) (*domain.OCRResult, error) {
	if c.detector == nil {
		return nil, fmt.Errorf("%w: no text detector configured", domain.ErrOCRFailed)
	}

	data := img.Data
	if c.staging != nil {
		staged, cleanup, err := c.stage(ctx, img)
		if err != nil {
			return nil, err
		}
		defer cleanup()
		data = staged
	}

	ocr, err := c.detector.DetectText(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrOCRFailed, err)
	}
	return ocr, nil
}

func (c *Coordinator) stage(ctx context.Context, img Image) ([]byte, func(), error) {
	ext := domain.AllowedImageTypes[img.ContentType]
	if ext == "" {
		ext = "bin"
	}
	key := fmt.Sprintf("%s%s.%s", c.stageCfg.Prefix, uuid.New().String(), ext)

	_, err := c.staging.Upload(ctx, port.UploadInput{
		Bucket:      c.stageCfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(img.Data),
		ContentType: img.ContentType,
		Size:        int64(len(img.Data)),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrStagingFailed, err)
	}

	cleanup := func() {
		if err := c.staging.Delete(context.WithoutCancel(ctx), c.stageCfg.Bucket, key); err != nil {
			c.log.Warn().Err(err).Str("key", key).Msg("removing staged image")
		}
	}

	data, err := c.staging.Download(ctx, c.stageCfg.Bucket, key)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrStagingFailed, err)
	}
	return data, cleanup, nil
}

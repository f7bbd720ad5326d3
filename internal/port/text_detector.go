package port

import (
	"context"

	"docscan/internal/domain"
)

// TextDetector abstracts OCR over a single image.
type TextDetector interface {
	DetectText(ctx context.Context, image []byte) (*domain.OCRResult, error)
}

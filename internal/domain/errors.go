package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoTextDetected         = errors.New("no text detected in the image")
	ErrClassificationRejected = errors.New("document does not match the requested class")
	ErrUnknownDocumentClass   = errors.New("unknown document class")
	ErrMissingImage           = errors.New("no image provided")
	ErrInvalidImage           = errors.New("image data is not valid")
	ErrUnsupportedImageType   = errors.New("unsupported image type")
	ErrImageTooLarge          = errors.New("image exceeds maximum allowed size")
	ErrOCRFailed              = errors.New("text detection failed")
	ErrStagingFailed          = errors.New("staging uploaded image failed")
)

// RejectionError carries the negative verdict of a classification.
// It unwraps to ErrClassificationRejected.
type RejectionError struct {
	Class   DocumentClass
	Verdict Verdict
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrClassificationRejected, e.Class)
}

func (e *RejectionError) Unwrap() error {
	return ErrClassificationRejected
}

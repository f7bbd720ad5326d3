package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"docscan/internal/domain"
	"docscan/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNoTextDetected, http.StatusBadRequest, "NO_TEXT_DETECTED"},
		{&domain.RejectionError{Class: domain.ClassCNIC}, http.StatusBadRequest, "CLASSIFICATION_REJECTED"},
		{fmt.Errorf("%w: %q", domain.ErrUnknownDocumentClass, "x"), http.StatusBadRequest, "INVALID_DOCUMENT_CLASS"},
		{domain.ErrMissingImage, http.StatusBadRequest, "MISSING_IMAGE"},
		{domain.ErrInvalidImage, http.StatusBadRequest, "INVALID_IMAGE"},
		{domain.ErrUnsupportedImageType, http.StatusBadRequest, "UNSUPPORTED_IMAGE_TYPE"},
		{domain.ErrImageTooLarge, http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE"},
		{&http.MaxBytesError{Limit: 10}, http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE"},
		{fmt.Errorf("%w: vision down", domain.ErrOCRFailed), http.StatusBadGateway, "OCR_FAILED"},
		{domain.ErrStagingFailed, http.StatusInternalServerError, "STAGING_FAILED"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			status, code, msg := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
			assert.NotEmpty(t, msg)
		})
	}
}

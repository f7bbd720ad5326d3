package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"docscan/internal/domain"
	"docscan/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success           bool            `json:"success"`
	Data              interface{}     `json:"data,omitempty"`
	Error             *APIError       `json:"error,omitempty"`
	ValidationDetails *domain.Verdict `json:"validation_details,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// RespondRejected sends the 400 response for a negative classification,
// carrying the verdict so callers can see why the document was refused.
func RespondRejected(c *gin.Context, msg string, verdict domain.Verdict) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Success:           false,
		Error:             &APIError{Code: "CLASSIFICATION_REJECTED", Message: msg},
		ValidationDetails: &verdict,
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.Is(err, domain.ErrNoTextDetected):
		return http.StatusBadRequest, "NO_TEXT_DETECTED", "no text detected in the image"
	case errors.Is(err, domain.ErrClassificationRejected):
		return http.StatusBadRequest, "CLASSIFICATION_REJECTED", "document does not match the requested class"
	case errors.Is(err, domain.ErrUnknownDocumentClass):
		return http.StatusBadRequest, "INVALID_DOCUMENT_CLASS", "unknown document class; allowed: cnic, domicile, phc, pmdc"
	case errors.Is(err, domain.ErrMissingImage):
		return http.StatusBadRequest, "MISSING_IMAGE", "no image provided"
	case errors.Is(err, domain.ErrInvalidImage):
		return http.StatusBadRequest, "INVALID_IMAGE", "image data could not be decoded"
	case errors.Is(err, domain.ErrUnsupportedImageType):
		return http.StatusBadRequest, "UNSUPPORTED_IMAGE_TYPE", "unsupported image type; allowed: jpg, png, gif, webp, bmp"
	case errors.Is(err, domain.ErrImageTooLarge), errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE", "image exceeds maximum allowed size"
	case errors.Is(err, domain.ErrOCRFailed):
		return http.StatusBadGateway, "OCR_FAILED", "text detection service failed"
	case errors.Is(err, domain.ErrStagingFailed):
		return http.StatusInternalServerError, "STAGING_FAILED", "staging the uploaded image failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, log zerolog.Logger, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Msg("internal error")
	}
	RespondError(c, status, code, msg)
}

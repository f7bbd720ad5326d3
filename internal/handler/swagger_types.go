package handler

import (
	"time"

	"docscan/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// Base64ImageRequest represents the base64 extraction request body.
type Base64ImageRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required" example:"data:image/jpeg;base64,/9j/4AAQSkZJRg..."`
	Filename    string `json:"filename" example:"cnic_front.jpg"`
}

// TextRequest carries text that was already recovered by OCR.
type TextRequest struct {
	Text     string `json:"text" example:"ISLAMIC REPUBLIC OF PAKISTAN National Identity Card 35201-1234567-1"`
	Filename string `json:"filename" example:"scan.txt"`
}

// --- Response Types ---

// ExtractionData is the data payload of a successful extraction.
type ExtractionData struct {
	ExtractedFields  *domain.ExtractedRecord `json:"extracted_fields" swaggertype:"object,string"`
	RawOCRText       string                  `json:"raw_ocr_text"`
	ValidationInfo   ValidationInfo          `json:"validation_info"`
	ExtractionSource domain.RecordSource     `json:"extraction_source" example:"primary"`
	ProcessingInfo   ProcessingInfo          `json:"processing_info"`
}

// ValidationInfo summarises the classification verdict.
type ValidationInfo struct {
	DocumentClass domain.DocumentClass `json:"document_class" example:"cnic"`
	DocumentType  string               `json:"document_type" example:"Pakistani CNIC"`
	Confidence    int                  `json:"confidence" example:"100"`
	Reasons       map[string]any       `json:"reasons,omitempty"`
}

// ProcessingInfo describes the processed input.
type ProcessingInfo struct {
	Filename    string    `json:"filename,omitempty" example:"cnic_front.jpg"`
	FileSize    int64     `json:"file_size,omitempty" example:"204800"`
	ProcessedAt time.Time `json:"processed_at" example:"2025-01-15T10:30:00Z"`
	Version     string    `json:"version" example:"5.0.0"`
}

// Response wraps a success response.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}

// RejectionResponseBody is returned when classification refuses the document.
type RejectionResponseBody struct {
	Success           bool            `json:"success" example:"false"`
	Error             *APIError       `json:"error"`
	ValidationDetails *domain.Verdict `json:"validation_details"`
}

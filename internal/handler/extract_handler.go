package handler

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"docscan/internal/docclass"
	"docscan/internal/domain"
	"docscan/internal/export"
	"docscan/internal/pipeline"
)

// APIVersion is reported in processing_info.
const APIVersion = "5.0.0"

// ExtractHandler handles document classification and extraction endpoints.
type ExtractHandler struct {
	svc           pipeline.Service
	maxImageBytes int64
	log           zerolog.Logger
	now           func() time.Time
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(svc pipeline.Service, maxImageBytes int64, log zerolog.Logger) *ExtractHandler {
	return &ExtractHandler{
		svc:           svc,
		maxImageBytes: maxImageBytes,
		log:           log,
		now:           time.Now,
	}
}

// dataURIPrefix matches the "data:image/png;base64," header browsers prepend.
var dataURIPrefix = regexp.MustCompile(`^data:image/\w+;base64,`)

// outputFormat is the rendering requested with ?format=.
type outputFormat string

const (
	formatJSON outputFormat = "json"
	formatCSV  outputFormat = "csv"
	formatXLSX outputFormat = "xlsx"
)

func parseFormat(c *gin.Context) (outputFormat, bool) {
	switch f := outputFormat(strings.ToLower(c.DefaultQuery("format", "json"))); f {
	case formatJSON, formatCSV, formatXLSX:
		return f, true
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "invalid 'format': must be one of json, csv, xlsx")
		return "", false
	}
}

// input is what every extract endpoint resolves its request into.
type input struct {
	class    domain.DocumentClass
	format   outputFormat
	filename string
	size     int64
}

func (h *ExtractHandler) begin(c *gin.Context, class string) (input, bool) {
	dc, err := domain.ParseDocumentClass(class)
	if err != nil {
		HandleError(c, h.log, err)
		return input{}, false
	}
	format, ok := parseFormat(c)
	if !ok {
		return input{}, false
	}
	return input{class: dc, format: format}, true
}

// ExtractUpload handles POST /api/v1/extract/:class
// @Summary      Extract fields from an uploaded image
// @Description  Runs OCR on the image, checks that it is the requested document class and extracts its fields
// @Tags         extract
// @Accept       multipart/form-data
// @Produce      json
// @Param        class path string true "Document class" Enums(cnic, domicile, phc, pmdc)
// @Param        image formData file true "Document image (JPG, PNG, GIF, WEBP, BMP)"
// @Param        format query string false "Response format" Enums(json, csv, xlsx) default(json)
// @Success      200 {object} Response{data=ExtractionData}
// @Failure      400 {object} RejectionResponseBody "Not the requested document class"
// @Failure      413 {object} ErrorResponseBody "Image too large"
// @Failure      502 {object} ErrorResponseBody "OCR failed"
// @Router       /extract/{class} [post]
func (h *ExtractHandler) ExtractUpload(c *gin.Context) {
	h.extractUpload(c, c.Param("class"))
}

// ExtractBase64 handles POST /api/v1/extract/:class/base64
// @Summary      Extract fields from a base64 image
// @Description  Accepts a base64 (optionally data-URI) encoded image
// @Tags         extract
// @Accept       json
// @Produce      json
// @Param        class path string true "Document class" Enums(cnic, domicile, phc, pmdc)
// @Param        body body Base64ImageRequest true "Encoded image"
// @Param        format query string false "Response format" Enums(json, csv, xlsx) default(json)
// @Success      200 {object} Response{data=ExtractionData}
// @Failure      400 {object} RejectionResponseBody "Not the requested document class"
// @Failure      413 {object} ErrorResponseBody "Image too large"
// @Router       /extract/{class}/base64 [post]
func (h *ExtractHandler) ExtractBase64(c *gin.Context) {
	h.extractBase64(c, c.Param("class"))
}

// ExtractText handles POST /api/v1/extract/:class/text
// @Summary      Extract fields from OCR text
// @Description  Skips OCR; classifies and extracts text that was already recognized
// @Tags         extract
// @Accept       json
// @Produce      json
// @Param        class path string true "Document class" Enums(cnic, domicile, phc, pmdc)
// @Param        body body TextRequest true "Recognized text"
// @Param        format query string false "Response format" Enums(json, csv, xlsx) default(json)
// @Success      200 {object} Response{data=ExtractionData}
// @Failure      400 {object} RejectionResponseBody "Not the requested document class"
// @Router       /extract/{class}/text [post]
func (h *ExtractHandler) ExtractText(c *gin.Context) {
	in, ok := h.begin(c, c.Param("class"))
	if !ok {
		return
	}

	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body must be a JSON object")
		return
	}
	in.filename = req.Filename

	result, err := h.svc.Process(c.Request.Context(), in.class, domain.NewOCRResult(req.Text))
	h.respond(c, in, result, err)
}

// Detect handles POST /api/v1/documents/detect
// @Summary      Detect the document class and extract its fields
// @Description  Scores the text against every class, picks the most confident match and extracts it
// @Tags         extract
// @Accept       json
// @Produce      json
// @Param        body body TextRequest true "Recognized text"
// @Param        format query string false "Response format" Enums(json, csv, xlsx) default(json)
// @Success      200 {object} Response{data=ExtractionData}
// @Failure      400 {object} RejectionResponseBody "No class matched"
// @Router       /documents/detect [post]
func (h *ExtractHandler) Detect(c *gin.Context) {
	format, ok := parseFormat(c)
	if !ok {
		return
	}

	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body must be a JSON object")
		return
	}

	result, err := h.svc.Detect(c.Request.Context(), domain.NewOCRResult(req.Text))
	in := input{format: format, filename: req.Filename}
	if result != nil {
		in.class = result.Class
	}
	h.respond(c, in, result, err)
}

// LegacyUpload serves the per-class upload routes kept for existing clients,
// e.g. POST /api/extract-cnic.
func (h *ExtractHandler) LegacyUpload(class domain.DocumentClass) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.extractUpload(c, string(class))
	}
}

// LegacyBase64 serves the per-class base64 routes kept for existing clients,
// e.g. POST /api/extract-cnic-base64.
func (h *ExtractHandler) LegacyBase64(class domain.DocumentClass) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.extractBase64(c, string(class))
	}
}

func (h *ExtractHandler) extractUpload(c *gin.Context, class string) {
	in, ok := h.begin(c, class)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			HandleError(c, h.log, domain.ErrImageTooLarge)
			return
		}
		HandleError(c, h.log, domain.ErrMissingImage)
		return
	}
	defer func() { _ = file.Close() }()

	if h.maxImageBytes > 0 && header.Size > h.maxImageBytes {
		HandleError(c, h.log, domain.ErrImageTooLarge)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		HandleError(c, h.log, fmt.Errorf("reading upload: %w", err))
		return
	}

	in.filename = header.Filename
	in.size = int64(len(data))
	h.processImage(c, in, data)
}

func (h *ExtractHandler) extractBase64(c *gin.Context, class string) {
	in, ok := h.begin(c, class)
	if !ok {
		return
	}

	var req Base64ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleError(c, h.log, domain.ErrMissingImage)
		return
	}

	data, err := DecodeBase64Image(req.ImageBase64)
	if err != nil {
		HandleError(c, h.log, err)
		return
	}
	if h.maxImageBytes > 0 && int64(len(data)) > h.maxImageBytes {
		HandleError(c, h.log, domain.ErrImageTooLarge)
		return
	}

	in.filename = req.Filename
	if in.filename == "" {
		in.filename = fmt.Sprintf("uploaded_%s.jpg", in.class)
	}
	in.size = int64(len(data))
	h.processImage(c, in, data)
}

func (h *ExtractHandler) processImage(c *gin.Context, in input, data []byte) {
	contentType, err := SniffImageType(data)
	if err != nil {
		HandleError(c, h.log, err)
		return
	}

	result, err := h.svc.ProcessImage(c.Request.Context(), in.class, pipeline.Image{
		Filename:    in.filename,
		ContentType: contentType,
		Data:        data,
	})
	h.respond(c, in, result, err)
}

func (h *ExtractHandler) respond(c *gin.Context, in input, result *domain.PipelineResult, err error) {
	var rejection *domain.RejectionError
	if errors.As(err, &rejection) {
		RespondRejected(c, rejectionMessage(rejection.Class), rejection.Verdict)
		return
	}
	if err != nil {
		HandleError(c, h.log, err)
		return
	}

	d := docclass.MustLookup(result.Class)
	switch in.format {
	case formatCSV, formatXLSX:
		h.download(c, in, d, *result.Record)
		return
	}

	RespondOK(c, ExtractionData{
		ExtractedFields: result.Record,
		RawOCRText:      result.RawText,
		ValidationInfo: ValidationInfo{
			DocumentClass: result.Class,
			DocumentType:  d.DisplayName,
			Confidence:    result.Confidence,
			Reasons:       result.Reasons,
		},
		ExtractionSource: result.Record.Source,
		ProcessingInfo: ProcessingInfo{
			Filename:    in.filename,
			FileSize:    in.size,
			ProcessedAt: h.now().UTC(),
			Version:     APIVersion,
		},
	})
}

func (h *ExtractHandler) download(c *gin.Context, in input, d *docclass.Descriptor, rec domain.ExtractedRecord) {
	base := in.filename
	if base == "" {
		base = string(d.Class)
	}

	var (
		buf         bytes.Buffer
		err         error
		contentType string
	)
	switch in.format {
	case formatXLSX:
		err = export.WriteXLSX(&buf, d, rec)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		err = export.WriteCSV(&buf, d, rec)
		contentType = "text/csv; charset=utf-8"
	}
	if err != nil {
		HandleError(c, h.log, fmt.Errorf("rendering %s: %w", in.format, err))
		return
	}

	filename := export.BuildFilename(base, string(in.format), h.now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func rejectionMessage(class domain.DocumentClass) string {
	if class == "" {
		return "Document did not match any supported document class"
	}
	d, err := docclass.Lookup(class)
	if err != nil {
		return "Document does not match the requested class"
	}
	return fmt.Sprintf("This does not appear to be a %s document", d.DisplayName)
}

// DecodeBase64Image strips an optional data-URI header and decodes the image.
func DecodeBase64Image(encoded string) ([]byte, error) {
	clean := strings.TrimSpace(dataURIPrefix.ReplaceAllString(strings.TrimSpace(encoded), ""))
	if clean == "" {
		return nil, domain.ErrMissingImage
	}
	data, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(clean, "="))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImage, err)
		}
	}
	if len(data) == 0 {
		return nil, domain.ErrMissingImage
	}
	return data, nil
}

// SniffImageType detects the image MIME type from its leading bytes.
func SniffImageType(data []byte) (string, error) {
	if len(data) == 0 {
		return "", domain.ErrMissingImage
	}
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	detected := http.DetectContentType(head)
	if _, ok := domain.AllowedImageTypes[detected]; !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedImageType, detected)
	}
	return detected, nil
}

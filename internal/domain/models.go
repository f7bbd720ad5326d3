package domain

import (
	"encoding/json"
	"strings"
)

const (
	// ConfidenceScoreField is the record key holding the extraction confidence.
	ConfidenceScoreField = "confidence_score"

	// DegradedConfidence marks a record produced by the fallback extractor.
	DegradedConfidence = 30

	// MatchThreshold is the minimum classifier confidence for a match.
	MatchThreshold = 60
)

// OCRResult is the output of the text detection collaborator.
type OCRResult struct {
	FullText string `json:"full_text"`
	HasText  bool   `json:"has_text"`
}

// NewOCRResult builds an OCRResult, deriving HasText from the text itself.
func NewOCRResult(text string) OCRResult {
	return OCRResult{FullText: text, HasText: strings.TrimSpace(text) != ""}
}

// Verdict is the outcome of classifying text against one document class.
type Verdict struct {
	Matches    bool           `json:"matches"`
	Confidence int            `json:"confidence"`
	Reasons    map[string]any `json:"reasons"`
}

// ExtractedRecord holds the named fields extracted for a document class.
// Fields always contains exactly the keys declared for Class.
type ExtractedRecord struct {
	Class           DocumentClass
	Fields          map[string]string
	ConfidenceScore int
	Source          RecordSource
}

// Degraded reports whether the record came from the fallback extractor.
func (r ExtractedRecord) Degraded() bool {
	return r.Source == SourceFallback
}

// MarshalJSON flattens the record into {field: value, ..., "confidence_score": n}.
func (r ExtractedRecord) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(r.Fields)+1)
	for k, v := range r.Fields {
		flat[k] = v
	}
	flat[ConfidenceScoreField] = r.ConfidenceScore
	return json.Marshal(flat)
}

// PipelineResult is returned to callers once classification has run.
// Record is set only when Matches is true.
type PipelineResult struct {
	Class      DocumentClass    `json:"document_class"`
	Matches    bool             `json:"matches"`
	Confidence int              `json:"confidence"`
	Reasons    map[string]any   `json:"reasons,omitempty"`
	Record     *ExtractedRecord `json:"record,omitempty"`
	RawText    string           `json:"-"`
}

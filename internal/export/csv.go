// Package export renders an extracted record as a downloadable sheet.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"docscan/internal/docclass"
	"docscan/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the header row shared by the CSV and XLSX renderings.
var columns = []string{"Field", "Description", "Value"}

// Rows converts a record into sheet rows: one per declared field in schema
// order, followed by the document class, confidence score and source.
func Rows(d *docclass.Descriptor, rec domain.ExtractedRecord) [][]string {
	rows := make([][]string, 0, len(d.Fields)+3)
	for _, f := range d.Fields {
		rows = append(rows, []string{f.Name, f.Description, rec.Fields[f.Name]})
	}
	rows = append(rows,
		[]string{"document_class", "Document type", d.DisplayName},
		[]string{domain.ConfidenceScoreField, "Extraction confidence (0-100)", strconv.Itoa(rec.ConfidenceScore)},
		[]string{"extraction_source", "How the fields were obtained", string(rec.Source)},
	)
	return rows
}

// Writer wraps csv.Writer for exporting records as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRecord writes one row per field of rec.
func (w *Writer) WriteRecord(d *docclass.Descriptor, rec domain.ExtractedRecord) error {
	for _, row := range Rows(d, rec) {
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// WriteCSV writes the BOM, header and record rows to out.
func WriteCSV(out io.Writer, d *docclass.Descriptor, rec domain.ExtractedRecord) error {
	if _, err := out.Write(BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}
	w := NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := w.WriteRecord(d, rec); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	w.Flush()
	return w.Error()
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_base}_{YYYY-MM-DD}.{ext}
func BuildFilename(base, ext string, now time.Time) string {
	sanitized := SanitizeFilename(strings.TrimSuffix(base, "."+ext))
	if sanitized == "" {
		sanitized = "document"
	}
	return fmt.Sprintf("%s_%s.%s", sanitized, now.Format("2006-01-02"), ext)
}

// Package fallback recovers what it can from OCR text with fixed patterns
// when the generation service is unavailable or answered unusably.
package fallback

import (
	"strings"

	"docscan/internal/docclass"
	"docscan/internal/domain"
	"docscan/internal/sanitizer"
)

// Extract returns a record with every declared field present. Fields without
// a matching rule, or whose rule finds nothing, are left empty.
func Extract(d *docclass.Descriptor, text string) domain.ExtractedRecord {
	fields := d.EmptyFields()

	for _, rule := range d.Fallback {
		if _, declared := fields[rule.Field]; !declared || fields[rule.Field] != "" {
			continue
		}
		fields[rule.Field] = apply(d, rule, text)
	}

	return domain.ExtractedRecord{
		Class:           d.Class,
		Fields:          fields,
		ConfidenceScore: domain.DegradedConfidence,
		Source:          domain.SourceFallback,
	}
}

func apply(d *docclass.Descriptor, rule docclass.FallbackRule, text string) string {
	m := rule.Pattern.FindStringSubmatch(text)
	if m == nil || rule.Group >= len(m) {
		return ""
	}
	value := strings.TrimSpace(m[rule.Group])

	if f, ok := d.Field(rule.Field); ok && f.Kind == docclass.KindCNIC {
		if canonical, ok := sanitizer.CanonicalCNIC(value); ok {
			return canonical
		}
	}
	return value
}

// Package docclass describes each supported document class: its field schema,
// the keywords used to classify it and the patterns used to recover fields
// without a generation service.
package docclass

import (
	"regexp"
	"strings"

	"docscan/internal/domain"
)

// FieldKind selects the normalization applied to a field value.
type FieldKind int

const (
	// KindRaw values are passed through exactly as extracted (dates, numbers).
	KindRaw FieldKind = iota
	// KindText values have whitespace runs collapsed and are trimmed.
	KindText
	// KindCNIC values are reformatted to DDDDD-DDDDDDD-D when they hold 13 digits.
	KindCNIC
	// KindGender values are mapped onto Male/Female.
	KindGender
	// KindMaritalStatus values are mapped onto Single/Married/Widow/Widower.
	KindMaritalStatus
)

// Field is one entry of a class schema.
type Field struct {
	Name        string
	Description string
	Kind        FieldKind
}

// Signal is a group of keywords and patterns; it fires when any of them
// occurs in the case-folded text.
type Signal struct {
	Keywords []string
	Patterns []*regexp.Regexp
}

// Match returns the first keyword or pattern match found in lower.
func (s Signal) Match(lower string) (string, bool) {
	for _, kw := range s.Keywords {
		if strings.Contains(lower, kw) {
			return kw, true
		}
	}
	for _, re := range s.Patterns {
		if loc := re.FindString(lower); loc != "" {
			return loc, true
		}
	}
	return "", false
}

// Bonus adds Points to the classifier confidence when its signal fires.
type Bonus struct {
	Name   string
	Points int
	Signal
}

// FallbackRule recovers one field from raw text with a pattern.
// Group selects the submatch to keep; 0 keeps the whole match.
type FallbackRule struct {
	Field   string
	Pattern *regexp.Regexp
	Group   int
}

// Descriptor is the full per-class configuration driving the classifier,
// the extraction prompt, the fallback extractor and the sanitizer.
type Descriptor struct {
	Class domain.DocumentClass
	// Label is the short name used in verdict reasons, e.g. "CNIC".
	Label       string
	DisplayName string

	Fields []Field

	// Exclusions are keywords strongly tied to other classes.
	Exclusions []string
	// Indicator must fire for the text to be considered at all.
	Indicator Signal
	// IndicatorReason names the indicator in verdict reasons,
	// e.g. "CNICNumber" yields hasCNICNumber / noCNICNumber.
	IndicatorReason string
	BaseConfidence  int
	Bonuses         []Bonus

	PromptRules []string
	MaxTokens   int

	Fallback []FallbackRule
}

// FieldNames returns the declared field names in schema order.
func (d *Descriptor) FieldNames() []string {
	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	return names
}

// Field looks up a declared field by name.
func (d *Descriptor) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// EmptyFields returns a map holding every declared field set to "".
func (d *Descriptor) EmptyFields() map[string]string {
	out := make(map[string]string, len(d.Fields))
	for _, f := range d.Fields {
		out[f.Name] = ""
	}
	return out
}

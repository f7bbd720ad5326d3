// Package sanitizer normalizes extracted records against their class schema.
package sanitizer

import (
	"regexp"
	"strings"

	"docscan/internal/docclass"
	"docscan/internal/domain"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonDigit      = regexp.MustCompile(`\D`)
)

// Sanitize returns a record holding exactly the fields declared by d.
// Missing fields become "", undeclared keys are dropped and every
// non-empty value is normalized according to its field kind.
func Sanitize(d *docclass.Descriptor, rec domain.ExtractedRecord) domain.ExtractedRecord {
	out := domain.ExtractedRecord{
		Class:           d.Class,
		Fields:          make(map[string]string, len(d.Fields)),
		ConfidenceScore: ClampConfidence(rec.ConfidenceScore),
		Source:          rec.Source,
	}

	for _, f := range d.Fields {
		value := rec.Fields[f.Name]
		if value == "" {
			out.Fields[f.Name] = ""
			continue
		}
		out.Fields[f.Name] = normalize(f.Kind, value)
	}
	return out
}

func normalize(kind docclass.FieldKind, value string) string {
	switch kind {
	case docclass.KindText:
		return CollapseWhitespace(value)
	case docclass.KindCNIC:
		if canonical, ok := CanonicalCNIC(value); ok {
			return canonical
		}
		return value
	case docclass.KindGender:
		return Gender(value)
	case docclass.KindMaritalStatus:
		return MaritalStatus(value)
	default:
		return value
	}
}

// ClampConfidence bounds a confidence score to [0, 100].
func ClampConfidence(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}

// CollapseWhitespace replaces every run of whitespace with one space and trims.
func CollapseWhitespace(value string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(value, " "))
}

// CanonicalCNIC formats value as DDDDD-DDDDDDD-D when it holds exactly 13
// digits. Any other digit count reports false.
func CanonicalCNIC(value string) (string, bool) {
	digits := nonDigit.ReplaceAllString(value, "")
	if len(digits) != 13 {
		return "", false
	}
	return digits[:5] + "-" + digits[5:12] + "-" + digits[12:], true
}

// Gender maps English and Urdu synonyms onto Male/Female.
// Female is tested first since "female" contains "male".
func Gender(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	switch {
	case lower == "f" || strings.Contains(lower, "female") ||
		strings.Contains(lower, "عورت") || strings.Contains(lower, "خاتون"):
		return "Female"
	case lower == "m" || strings.Contains(lower, "male") || strings.Contains(lower, "مرد"):
		return "Male"
	default:
		return value
	}
}

// MaritalStatus maps common spellings onto Single/Married/Widow/Widower.
func MaritalStatus(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	switch {
	case strings.Contains(lower, "unmarried") || strings.Contains(lower, "single"):
		return "Single"
	case strings.Contains(lower, "widower"):
		return "Widower"
	case strings.Contains(lower, "widow"):
		return "Widow"
	case strings.Contains(lower, "married"):
		return "Married"
	default:
		return value
	}
}

// Package classifier scores OCR text against the document classes.
//
// A class is rejected outright when any of its exclusion keywords occurs,
// even if positive indicators are present as well. Otherwise at least one
// indicator must fire, after which the class base score is raised by each
// corroborating bonus at most once.
package classifier

import (
	"strings"

	"docscan/internal/docclass"
	"docscan/internal/domain"
)

const maxConfidence = 100

// Classify tests text against a single document class.
func Classify(d *docclass.Descriptor, text string) domain.Verdict {
	lower := strings.ToLower(text)

	for _, kw := range d.Exclusions {
		if strings.Contains(lower, kw) {
			return domain.Verdict{
				Matches:    false,
				Confidence: 0,
				Reasons: map[string]any{
					"excludedBecause": "Contains non-" + d.Label + " indicators",
					"excludedKeyword": kw,
				},
			}
		}
	}

	hit, ok := d.Indicator.Match(lower)
	if !ok {
		return domain.Verdict{
			Matches:    false,
			Confidence: 0,
			Reasons:    map[string]any{"no" + d.IndicatorReason: true},
		}
	}

	reasons := map[string]any{"has" + d.IndicatorReason: hit}
	confidence := d.BaseConfidence
	for _, b := range d.Bonuses {
		if m, fired := b.Match(lower); fired {
			confidence += b.Points
			reasons[b.Name] = m
		}
	}
	if confidence > maxConfidence {
		confidence = maxConfidence
	}
	reasons["confidence"] = confidence

	if confidence < domain.MatchThreshold {
		reasons["belowThreshold"] = true
		return domain.Verdict{Matches: false, Confidence: 0, Reasons: reasons}
	}
	return domain.Verdict{Matches: true, Confidence: confidence, Reasons: reasons}
}

// ClassifyAs looks up the descriptor for class and classifies text with it.
func ClassifyAs(class domain.DocumentClass, text string) (domain.Verdict, error) {
	d, err := docclass.Lookup(class)
	if err != nil {
		return domain.Verdict{}, err
	}
	return Classify(d, text), nil
}

// Detection is the outcome of testing text against every class.
type Detection struct {
	// Class is empty when no class matched.
	Class      domain.DocumentClass
	Verdict    domain.Verdict
	Candidates map[domain.DocumentClass]domain.Verdict
}

// Matched reports whether any class accepted the text.
func (d Detection) Matched() bool {
	return d.Class != ""
}

// Detect classifies text against all classes and keeps the highest-confidence
// match. Ties go to the class listed first in domain.DocumentClasses.
func Detect(text string) Detection {
	det := Detection{Candidates: make(map[domain.DocumentClass]domain.Verdict, len(domain.DocumentClasses))}

	for _, d := range docclass.All() {
		v := Classify(d, text)
		det.Candidates[d.Class] = v
		if v.Matches && (!det.Matched() || v.Confidence > det.Verdict.Confidence) {
			det.Class = d.Class
			det.Verdict = v
		}
	}

	if !det.Matched() {
		reasons := map[string]any{"noClassMatched": true}
		for class, v := range det.Candidates {
			reasons[string(class)] = v.Reasons
		}
		det.Verdict = domain.Verdict{Matches: false, Confidence: 0, Reasons: reasons}
	}
	return det
}

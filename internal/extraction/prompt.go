package extraction

import (
	"strconv"
	"strings"

	"docscan/internal/docclass"
	"docscan/internal/domain"
)

// DefaultConfidence is the confidence shown in the prompt template. It is
// also assumed when a completion omits confidence_score.
const DefaultConfidence = 85

var baseRules = []string{
	"Extract text EXACTLY as written - do NOT correct spelling, grammar, or word order",
	"Do NOT rearrange, translate, or paraphrase words",
	"Keep addresses, names and numbers exactly as they appear",
	`If a field is not found, use empty string ""`,
}

// BuildPrompt returns the extraction prompt for text read from a document of
// class d. The prompt lists every declared field with its description and
// asks for a single JSON object.
func BuildPrompt(d *docclass.Descriptor, text string) string {
	var b strings.Builder

	b.WriteString("You are an expert at extracting information from ")
	b.WriteString(d.DisplayName)
	b.WriteString(" documents. Extract the following information from this OCR text EXACTLY as it appears.\n\n")

	b.WriteString("CRITICAL RULES:\n")
	n := 0
	for _, rules := range [][]string{baseRules, d.PromptRules} {
		for _, r := range rules {
			n++
			b.WriteString(strconv.Itoa(n))
			b.WriteString(". ")
			b.WriteString(r)
			b.WriteString("\n")
		}
	}

	b.WriteString("\nOCR Text:\n")
	b.WriteString(text)
	b.WriteString("\n\nReturn ONLY a JSON object in this exact format:\n{\n")
	for _, f := range d.Fields {
		b.WriteString("  ")
		b.WriteString(strconv.Quote(f.Name))
		b.WriteString(": ")
		b.WriteString(strconv.Quote(f.Description))
		b.WriteString(",\n")
	}
	b.WriteString("  ")
	b.WriteString(strconv.Quote(domain.ConfidenceScoreField))
	b.WriteString(": ")
	b.WriteString(strconv.Itoa(DefaultConfidence))
	b.WriteString("\n}\n\nReturn ONLY the JSON object, no markdown and no explanation.")

	return b.String()
}

package extraction_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"docscan/internal/docclass"
	"docscan/internal/domain"
	"docscan/internal/extraction"
)

func TestBuildPrompt_ListsEveryField(t *testing.T) {
	for _, d := range docclass.All() {
		t.Run(string(d.Class), func(t *testing.T) {
			prompt := extraction.BuildPrompt(d, "SOME OCR TEXT")

			assert.Contains(t, prompt, d.DisplayName)
			assert.Contains(t, prompt, "CRITICAL RULES:")
			assert.Contains(t, prompt, "SOME OCR TEXT")
			for _, f := range d.Fields {
				assert.Contains(t, prompt, `"`+f.Name+`": `)
			}
			assert.Contains(t, prompt, `"confidence_score": 85`)
			assert.True(t, strings.HasSuffix(prompt, "no markdown and no explanation."))
		})
	}
}

func TestBuildPrompt_ClassRules(t *testing.T) {
	prompt := extraction.BuildPrompt(docclass.MustLookup(domain.ClassCNIC), "x")

	assert.Contains(t, prompt, "5. CNIC format: XXXXX-XXXXXXX-X (13 digits total)")
	assert.Contains(t, prompt, `"gender": "Male/Female/مرد/عورت"`)
}

func TestBuildPrompt_TemplateIsValidJSONShape(t *testing.T) {
	prompt := extraction.BuildPrompt(docclass.MustLookup(domain.ClassPMDC), "x")

	obj, ok := extraction.FindJSONObject(prompt[strings.Index(prompt, "exact format:"):])
	assert.True(t, ok)
	assert.True(t, strings.HasSuffix(obj, "\"confidence_score\": 85\n}"))
}

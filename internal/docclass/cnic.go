package docclass

import (
	"regexp"

	"docscan/internal/domain"
)

var cnic = &Descriptor{
	Class:       domain.ClassCNIC,
	Label:       "CNIC",
	DisplayName: "Pakistani CNIC",
	Fields: []Field{
		{Name: "name", Description: "Full name exactly as written", Kind: KindText},
		{Name: "father_name", Description: "Father's name exactly as written", Kind: KindText},
		{Name: "cnic", Description: "XXXXX-XXXXXXX-X format only", Kind: KindCNIC},
		{Name: "dob", Description: "Date as written (DD/MM/YYYY preferred)", Kind: KindRaw},
		{Name: "gender", Description: "Male/Female/مرد/عورت", Kind: KindGender},
		{Name: "address", Description: "Complete address EXACTLY as it appears - NO changes", Kind: KindText},
	},
	Exclusions: []string{
		"medical council", "pmdc", "medical registration", "license",
		"university", "degree", "diploma", "certificate", "domicile",
		"healthcare commission", "registration certificate", "phc",
	},
	Indicator: Signal{
		Patterns: []*regexp.Regexp{CNICPattern, contiguousCNICPattern},
	},
	IndicatorReason: "CNICNumber",
	BaseConfidence:  60,
	Bonuses: []Bonus{
		{
			Name:   "identityCardKeyword",
			Points: 30,
			Signal: Signal{Keywords: []string{
				"computerized national identity card", "national identity card",
				"شناختی کارڈ", "قومی شناختی کارڈ", "cnic",
			}},
		},
		{
			Name:   "pakistanContext",
			Points: 10,
			Signal: Signal{Keywords: []string{"nadra", "نادرا", "pakistan", "پاکستان"}},
		},
	},
	PromptRules: []string{
		"CNIC format: XXXXX-XXXXXXX-X (13 digits total)",
	},
	MaxTokens: 600,
	Fallback: []FallbackRule{
		{Field: "cnic", Pattern: CNICPattern},
	},
}

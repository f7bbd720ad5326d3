package docclass

import (
	"regexp"

	"docscan/internal/domain"
)

var domicile = &Descriptor{
	Class:       domain.ClassDomicile,
	Label:       "Domicile",
	DisplayName: "Pakistani Domicile Certificate",
	Fields: []Field{
		{Name: "full_name", Description: "Full name exactly as written", Kind: KindText},
		{Name: "father_name", Description: "Father's/D/O name exactly as written", Kind: KindText},
		{Name: "address_in_pakistan", Description: "Complete address EXACTLY as it appears", Kind: KindText},
		{Name: "place_of_domicile", Description: "Place of domicile as written", Kind: KindText},
		{Name: "domicile_tehsil", Description: "Tehsil name", Kind: KindText},
		{Name: "district", Description: "District name", Kind: KindText},
		{Name: "province", Description: "Province/Admin unit", Kind: KindText},
		{Name: "date_of_arrival", Description: "Date as written", Kind: KindRaw},
		{Name: "marital_status", Description: "Single/Married/Widow/Widower", Kind: KindMaritalStatus},
		{Name: "occupation", Description: "Trade or occupation", Kind: KindText},
		{Name: "identification_mark", Description: "Mark of identification", Kind: KindText},
		{Name: "certificate_date", Description: "Certificate issue date", Kind: KindRaw},
		{Name: "certificate_number", Description: "Certificate number if visible", Kind: KindRaw},
		{Name: "issuing_officer", Description: "District Coordination Officer or issuing authority", Kind: KindText},
	},
	Exclusions: []string{
		"medical council", "pmdc", "medical registration", "license",
		"university", "degree", "diploma", "computerized national identity card", "cnic",
		"healthcare commission", "registration certificate", "phc",
	},
	Indicator: Signal{Keywords: []string{
		"certificate of domicile", "domicile", "citizenship act", "appendix",
		"form p-i", "district coordination officer", "place of domicile",
	}},
	IndicatorReason: "DomicileIndicators",
	BaseConfidence:  70,
	Bonuses: []Bonus{
		{
			Name:   "pakistanContext",
			Points: 15,
			Signal: Signal{Keywords: []string{"pakistan", "پاکستان"}},
		},
		{
			Name:   "districtOfficerSignature",
			Points: 15,
			Signal: Signal{Keywords: []string{"district coordination officer", "district officer"}},
		},
	},
	PromptRules: []string{
		"Look for official form fields and their values",
	},
	MaxTokens: 800,
	Fallback: []FallbackRule{
		{
			Field:   "certificate_number",
			Pattern: regexp.MustCompile(`(?i)certificate\s*(?:no|number|#)\.?\s*[:\-]?\s*([a-z0-9/\-]*\d[a-z0-9/\-]*)`),
			Group:   1,
		},
	},
}

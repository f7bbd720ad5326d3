package docclass

import (
	"regexp"

	"docscan/internal/domain"
)

var phcRegistrationPattern = regexp.MustCompile(`(?i)reg\.?\s*no\.?[-:\s]*[a-z]?-?\d+`)

var phc = &Descriptor{
	Class:       domain.ClassPHC,
	Label:       "PHC",
	DisplayName: "Punjab Healthcare Commission Registration Certificate",
	Fields: []Field{
		{Name: "registration_number", Description: "Registration number (e.g., REG. NO-R-17633)", Kind: KindRaw},
		{Name: "organization_name", Description: "Healthcare establishment name exactly as written", Kind: KindText},
		{Name: "establishment_type", Description: "Type of healthcare establishment", Kind: KindText},
		{Name: "address", Description: "Complete address EXACTLY as it appears", Kind: KindText},
		{Name: "registration_date", Description: "Date of registration as written", Kind: KindRaw},
		{Name: "validity_period", Description: "Registration validity period if mentioned", Kind: KindRaw},
		{Name: "issuing_authority", Description: "Punjab Healthcare Commission or specific authority", Kind: KindText},
		{Name: "director_name", Description: "Director name if visible", Kind: KindText},
		{Name: "license_category", Description: "License/registration category", Kind: KindText},
		{Name: "services_authorized", Description: "Authorized services if mentioned", Kind: KindText},
		{Name: "certificate_date", Description: "Certificate issue date", Kind: KindRaw},
		{Name: "act_reference", Description: "Healthcare Commission ACT reference", Kind: KindText},
		{Name: "section_reference", Description: "Section reference (e.g., Section 13)", Kind: KindText},
	},
	Exclusions: []string{
		"computerized national identity card", "cnic", "certificate of domicile",
		"university", "degree", "diploma",
	},
	Indicator: Signal{Keywords: []string{
		"punjab healthcare commission", "healthcare commission", "registration certificate",
		"private healthcare establishment", "healthcare establishment",
		"reg. no", "registration no", "phc",
	}},
	IndicatorReason: "PHCIndicators",
	BaseConfidence:  70,
	Bonuses: []Bonus{
		{
			Name:   "hasRegNumber",
			Points: 20,
			Signal: Signal{Patterns: []*regexp.Regexp{phcRegistrationPattern}},
		},
		{
			Name:   "authoritySignature",
			Points: 10,
			Signal: Signal{Keywords: []string{"director", "licensing", "accreditation"}},
		},
	},
	PromptRules: []string{
		"Look for registration details, organization info, and official signatures",
	},
	MaxTokens: 800,
	Fallback: []FallbackRule{
		{Field: "registration_number", Pattern: phcRegistrationPattern},
	},
}

package docclass

import (
	"regexp"

	"docscan/internal/domain"
)

var pmdcRegistrationPattern = regexp.MustCompile(`(?i)registration\s+number\s*:?\s*(\d+)`)

var pmdc = &Descriptor{
	Class:       domain.ClassPMDC,
	Label:       "PMDC",
	DisplayName: "Pakistan Medical and Dental Council Certificate",
	Fields: []Field{
		{Name: "registration_number", Description: "Registration number exactly as written", Kind: KindRaw},
		{Name: "cnic_passport", Description: "CNIC/Passport number exactly as written", Kind: KindCNIC},
		{Name: "name", Description: "Full name exactly as written", Kind: KindText},
		{Name: "father_name", Description: "Father's name exactly as written", Kind: KindText},
		{Name: "present_address", Description: "Present address EXACTLY as it appears", Kind: KindText},
		{Name: "contact_number", Description: "Contact/phone number if visible", Kind: KindRaw},
		{Name: "permanent_address", Description: "Permanent address if different from present", Kind: KindText},
		{Name: "registration_date", Description: "Registration date as written", Kind: KindRaw},
		{Name: "valid_upto", Description: "Validity date as written", Kind: KindRaw},
		{Name: "qualification", Description: "Medical qualification/degree", Kind: KindText},
		{Name: "institute_university", Description: "Institute/University name", Kind: KindText},
		{Name: "year", Description: "Year of qualification", Kind: KindRaw},
		{Name: "certificate_type", Description: "Certificate type (e.g., Certificate of Permanent Medical Registration)", Kind: KindText},
		{Name: "issuing_authority", Description: "Pakistan Medical and Dental Council or specific authority", Kind: KindText},
		{Name: "registrar_signature", Description: "Registrar name if visible", Kind: KindText},
	},
	Exclusions: []string{
		"computerized national identity card", "cnic", "certificate of domicile",
		"healthcare commission", "phc", "registration certificate",
	},
	Indicator: Signal{Keywords: []string{
		"pakistan medical and dental council", "medical and dental council", "pmdc",
		"certificate of permanent medical registration", "permanent medical registration",
		"medical registration", "registration number",
	}},
	IndicatorReason: "PMDCIndicators",
	BaseConfidence:  70,
	Bonuses: []Bonus{
		{
			Name:   "hasRegNumber",
			Points: 20,
			Signal: Signal{Patterns: []*regexp.Regexp{
				pmdcRegistrationPattern,
				regexp.MustCompile(`\d{5,}`),
			}},
		},
		{
			Name:   "cnicPassportNumber",
			Points: 10,
			Signal: Signal{
				Keywords: []string{"cnic/passport"},
				Patterns: []*regexp.Regexp{regexp.MustCompile(`\d{5}[-\s]?\d{7}[-\s]?\d`)},
			},
		},
	},
	PromptRules: []string{
		"Look for registration details, personal info, and qualification details",
	},
	MaxTokens: 800,
	Fallback: []FallbackRule{
		{Field: "registration_number", Pattern: pmdcRegistrationPattern, Group: 1},
		{Field: "cnic_passport", Pattern: CNICPattern},
	},
}

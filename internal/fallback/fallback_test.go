package fallback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docscan/internal/docclass"
	"docscan/internal/domain"
	"docscan/internal/fallback"
)

func TestExtract_CNIC(t *testing.T) {
	d := docclass.MustLookup(domain.ClassCNIC)

	rec := fallback.Extract(d, "National Identity Card\nIdentity Number\n35201 1234567 1\nName Ali")

	assert.Equal(t, "35201-1234567-1", rec.Fields["cnic"])
	assert.Equal(t, "", rec.Fields["name"])
	assert.Equal(t, domain.DegradedConfidence, rec.ConfidenceScore)
	assert.Equal(t, domain.SourceFallback, rec.Source)
	assert.True(t, rec.Degraded())
}

func TestExtract_CNIC_Contiguous(t *testing.T) {
	d := docclass.MustLookup(domain.ClassCNIC)

	rec := fallback.Extract(d, "3520112345671")

	assert.Equal(t, "35201-1234567-1", rec.Fields["cnic"])
}

func TestExtract_PHC_KeepsWholeMatch(t *testing.T) {
	d := docclass.MustLookup(domain.ClassPHC)

	rec := fallback.Extract(d, "PUNJAB HEALTHCARE COMMISSION\nREG. NO-R-17633\nDated 12/03/2021")

	assert.Equal(t, "REG. NO-R-17633", rec.Fields["registration_number"])
}

func TestExtract_PMDC(t *testing.T) {
	d := docclass.MustLookup(domain.ClassPMDC)

	rec := fallback.Extract(d, "Pakistan Medical and Dental Council\nRegistration Number: 98765\nCNIC 35202-1234567-8")

	assert.Equal(t, "98765", rec.Fields["registration_number"])
	assert.Equal(t, "35202-1234567-8", rec.Fields["cnic_passport"])
}

func TestExtract_Domicile_CertificateNumber(t *testing.T) {
	d := docclass.MustLookup(domain.ClassDomicile)

	rec := fallback.Extract(d, "CERTIFICATE OF DOMICILE\nCertificate No. LHR/2019-4471\nDistrict Lahore")

	assert.Equal(t, "LHR/2019-4471", rec.Fields["certificate_number"])
	assert.Equal(t, "", rec.Fields["district"])
}

func TestExtract_NothingRecoverable(t *testing.T) {
	d := docclass.MustLookup(domain.ClassPMDC)

	rec := fallback.Extract(d, "Pakistan Medical and Dental Council")

	for _, name := range d.FieldNames() {
		assert.Equal(t, "", rec.Fields[name], name)
	}
}

func TestExtract_Completeness(t *testing.T) {
	inputs := []string{
		"",
		"garbage ### 123",
		"35201-1234567-1 REG. NO-17633 Registration Number: 1 Certificate No 5",
	}

	for _, d := range docclass.All() {
		for _, text := range inputs {
			rec := fallback.Extract(d, text)

			require.Len(t, rec.Fields, len(d.Fields), d.Class)
			for _, name := range d.FieldNames() {
				_, ok := rec.Fields[name]
				assert.True(t, ok, "%s missing %s", d.Class, name)
			}
			assert.Equal(t, 30, rec.ConfidenceScore)
			assert.Equal(t, d.Class, rec.Class)
		}
	}
}

package extraction_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docscan/internal/docclass"
	"docscan/internal/domain"
	"docscan/internal/extraction"
	"docscan/internal/port"
	"docscan/mocks"
)

var testConfig = extraction.Config{Model: "command-r-plus", Temperature: 0.1}

func newOrchestrator(t *testing.T, gen port.TextGenerator) *extraction.Orchestrator {
	t.Helper()
	o, err := extraction.NewOrchestrator(gen, testConfig, zerolog.Nop())
	require.NoError(t, err)
	return o
}

func TestOrchestrator_PrimaryPath(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	d := docclass.MustLookup(domain.ClassCNIC)
	text := "National Identity Card 3520112345671"

	gen.On("Generate", mock.Anything, mock.MatchedBy(func(req port.GenerationRequest) bool {
		return req.Model == "command-r-plus" &&
			req.Temperature == 0.1 &&
			req.MaxTokens == 600 &&
			req.Prompt == extraction.BuildPrompt(d, text)
	})).Return(`{"name":"Muhammad  Ali","father_name":"Ahmed Ali","cnic":"3520112345671",`+
		`"dob":"01/01/1990","gender":"male","address":"Lahore","confidence_score":95}`, nil).Once()

	rec := newOrchestrator(t, gen).Extract(context.Background(), d, text)

	assert.Equal(t, domain.SourcePrimary, rec.Source)
	assert.Equal(t, 95, rec.ConfidenceScore)
	assert.Equal(t, "35201-1234567-1", rec.Fields["cnic"])
	assert.Equal(t, "Muhammad Ali", rec.Fields["name"])
	assert.Equal(t, "Male", rec.Fields["gender"])
	assert.Len(t, rec.Fields, len(d.Fields))
	gen.AssertExpectations(t)
}

func TestOrchestrator_NonNumericConfidenceKeepsFields(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	d := docclass.MustLookup(domain.ClassCNIC)
	gen.On("Generate", mock.Anything, mock.Anything).
		Return(`{"name":"Ali Khan","cnic":"3520112345671","confidence_score":true}`, nil).Once()

	rec := newOrchestrator(t, gen).Extract(context.Background(), d, "National Identity Card 3520112345671")

	assert.Equal(t, domain.SourcePrimary, rec.Source)
	assert.Equal(t, extraction.DefaultConfidence, rec.ConfidenceScore)
	assert.Equal(t, "Ali Khan", rec.Fields["name"])
	assert.Equal(t, "35201-1234567-1", rec.Fields["cnic"])
	gen.AssertExpectations(t)
}

func TestOrchestrator_MaxTokensPerClass(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(req port.GenerationRequest) bool {
		return req.MaxTokens == 800
	})).Return(`{}`, nil)

	o := newOrchestrator(t, gen)
	for _, class := range []domain.DocumentClass{domain.ClassDomicile, domain.ClassPHC, domain.ClassPMDC} {
		o.Extract(context.Background(), docclass.MustLookup(class), "text")
	}

	gen.AssertNumberOfCalls(t, "Generate", 3)
}

func TestOrchestrator_GenerationErrorFallsBack(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	d := docclass.MustLookup(domain.ClassDomicile)
	text := "CERTIFICATE OF DOMICILE\nCertificate No: 4471\nDistrict Coordination Officer"

	gen.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("dial tcp: connection refused")).Once()

	rec := newOrchestrator(t, gen).Extract(context.Background(), d, text)

	assert.Equal(t, domain.SourceFallback, rec.Source)
	assert.Equal(t, domain.DegradedConfidence, rec.ConfidenceScore)
	require.Len(t, rec.Fields, len(d.Fields))
	for _, name := range d.FieldNames() {
		if name == "certificate_number" {
			assert.Equal(t, "4471", rec.Fields[name])
			continue
		}
		assert.Equal(t, "", rec.Fields[name], name)
	}
	gen.AssertNumberOfCalls(t, "Generate", 1)
}

func TestOrchestrator_UnparsableFallsBack(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	d := docclass.MustLookup(domain.ClassPMDC)
	text := "Pakistan Medical and Dental Council\nRegistration Number: 55555"

	gen.On("Generate", mock.Anything, mock.Anything).Return("I am unable to help with that.", nil).Once()

	rec := newOrchestrator(t, gen).Extract(context.Background(), d, text)

	assert.True(t, rec.Degraded())
	assert.Equal(t, 30, rec.ConfidenceScore)
	assert.Equal(t, "55555", rec.Fields["registration_number"])
	gen.AssertNumberOfCalls(t, "Generate", 1)
}

func TestOrchestrator_CanceledContextFallsBack(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	d := docclass.MustLookup(domain.ClassCNIC)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen.On("Generate", mock.Anything, mock.Anything).Return("", context.Canceled).Once()

	rec := newOrchestrator(t, gen).Extract(ctx, d, "35201-1234567-1")

	assert.Equal(t, domain.SourceFallback, rec.Source)
	assert.Equal(t, "35201-1234567-1", rec.Fields["cnic"])
}

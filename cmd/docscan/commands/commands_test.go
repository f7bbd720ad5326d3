package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docscan/internal/domain"
)

const cnicText = "ISLAMIC REPUBLIC OF PAKISTAN National Identity Card 35201-1234567-1"

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		classifyClass = "auto"
		extractClass = "auto"
		extractFormat = "json"
		extractOutput = ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestClassify_AutoFromStdin(t *testing.T) {
	out, err := execute(t, cnicText, "classify", "-")
	require.NoError(t, err)

	var got struct {
		Class   domain.DocumentClass `json:"document_class"`
		Verdict domain.Verdict       `json:"verdict"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, domain.ClassCNIC, got.Class)
	assert.True(t, got.Verdict.Matches)
}

func TestClassify_ExplicitClassFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.txt")
	require.NoError(t, os.WriteFile(path, []byte(cnicText), 0o600))

	out, err := execute(t, "", "classify", "--class", "pmdc", path)
	require.NoError(t, err)

	var v domain.Verdict
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.False(t, v.Matches)
}

func TestClassify_UnknownClass(t *testing.T) {
	_, err := execute(t, cnicText, "classify", "--class", "passport", "-")
	assert.ErrorIs(t, err, domain.ErrUnknownDocumentClass)
}

func TestExtract_FallbackWhenProviderDown(t *testing.T) {
	llm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer llm.Close()
	t.Setenv("DOCSCAN_GENERATION_PROVIDER", "cohere")
	t.Setenv("DOCSCAN_GENERATION_ENDPOINT", llm.URL)
	t.Setenv("DOCSCAN_GENERATION_API_KEY", "k")

	out, err := execute(t, cnicText, "extract", "--class", "cnic", "-")
	require.NoError(t, err)
	assert.Contains(t, out, `"cnic": "35201-1234567-1"`)
	assert.Contains(t, out, `"confidence_score": 30`)
}

func TestExtract_CSV(t *testing.T) {
	llm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer llm.Close()
	t.Setenv("DOCSCAN_GENERATION_ENDPOINT", llm.URL)

	out, err := execute(t, cnicText, "extract", "--format", "csv", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Field,Description,Value")
	assert.Contains(t, out, "35201-1234567-1")
}

func TestExtract_Rejected(t *testing.T) {
	t.Setenv("DOCSCAN_GENERATION_ENDPOINT", "http://127.0.0.1:1")

	out, err := execute(t, cnicText, "extract", "--class", "domicile", "-")
	assert.ErrorIs(t, err, domain.ErrClassificationRejected)
	assert.Contains(t, out, `"matches": false`)
}

func TestExtract_BadFormat(t *testing.T) {
	_, err := execute(t, cnicText, "extract", "--format", "pdf", "-")
	assert.Error(t, err)
}

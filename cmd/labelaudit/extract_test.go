package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelaudit/internal/config"
	"labelaudit/internal/domain"
)

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		path string
		want domain.ExportFormat
	}{
		{"", domain.ExportFormatJSON},
		{"out.json", domain.ExportFormatJSON},
		{"out.CSV", domain.ExportFormatCSV},
		{"reports/out.xlsx", domain.ExportFormatXLSX},
	}
	for _, tt := range tests {
		got, err := outputFormat(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := outputFormat("out.pdf")
	assert.ErrorIs(t, err, domain.ErrUnsupportedExportFormat)
}

func TestWriteResult_Stdout(t *testing.T) {
	var buf bytes.Buffer
	data := &domain.ExtractedData{Items: []domain.InspectionItem{{Spec: "SM-1", PCS: 3}}}

	require.NoError(t, writeResult(&buf, "", data, domain.ExportFormatJSON))

	assert.Contains(t, buf.String(), `"spec": "SM-1"`)
}

func TestWriteResult_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	data := &domain.ExtractedData{Company: "ACME", Items: []domain.InspectionItem{{Spec: "SM-1", PCS: 3}}}

	require.NoError(t, writeResult(nil, path, data, domain.ExportFormatCSV))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "SM-1")
}

func TestCredentials(t *testing.T) {
	t.Cleanup(func() { apiKeyFlag = "" })

	apiKeyFlag = "flag-key"
	assert.Equal(t, config.StaticCredentials("flag-key"), credentials())

	apiKeyFlag = ""
	t.Setenv(config.APIKeyEnv, "env-key")
	assert.Equal(t, "env-key", credentials().APIKey())
}

func TestApplyInferenceFlags(t *testing.T) {
	t.Cleanup(func() { providerFlag, modelFlag = "", "" })

	cfg := config.InferenceConfig{Provider: "gemini", Model: "m1"}
	applyInferenceFlags(&cfg)
	assert.Equal(t, config.InferenceConfig{Provider: "gemini", Model: "m1"}, cfg)

	providerFlag, modelFlag = "openai", "gpt-4o"
	applyInferenceFlags(&cfg)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o", cfg.Model)
}

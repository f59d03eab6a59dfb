package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"labelaudit/internal/app"
	"labelaudit/internal/config"
)

func TestNewExtractor_KnownProviders(t *testing.T) {
	for _, provider := range []string{"gemini", "openai"} {
		e, err := app.NewExtractor(&config.InferenceConfig{Provider: provider}, config.StaticCredentials("k"), zap.NewNop())
		require.NoError(t, err, provider)
		assert.NotNil(t, e)
	}
}

func TestNewExtractor_UnknownProvider(t *testing.T) {
	_, err := app.NewExtractor(&config.InferenceConfig{Provider: "claude"}, config.StaticCredentials("k"), zap.NewNop())

	assert.ErrorContains(t, err, "unknown inference provider")
}

func TestNewRouter(t *testing.T) {
	cfg := &config.Config{
		Inference: config.InferenceConfig{Provider: "gemini"},
		Upload:    config.UploadConfig{MaxImageSizeMB: 1},
	}

	r, err := app.NewRouter(cfg, config.StaticCredentials(""), zap.NewNop())

	require.NoError(t, err)
	paths := map[string]bool{}
	for _, route := range r.Routes() {
		paths[route.Method+" "+route.Path] = true
	}
	assert.True(t, paths["POST /api/v1/extractions"])
	assert.True(t, paths["POST /api/v1/extractions/export"])
	assert.True(t, paths["GET /readyz"])
}

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_BedrockConfig(t *testing.T) {
	// Setup environment variables
	os.Setenv("BEDROCK_MODEL_ID", "apac.amazon.nova-pro-v1:0")
	os.Setenv("MAX_TOKENS", "800")
	defer func() {
		os.Unsetenv("BEDROCK_MODEL_ID")
		os.Unsetenv("MAX_TOKENS")
	}()

	// Load config
	cfg, err := Load()
	assert.NoError(t, err)

	// Verify Bedrock config
	assert.Equal(t, "apac.amazon.nova-pro-v1:0", cfg.Bedrock.ModelID)
	assert.Equal(t, 800, cfg.Bedrock.MaxTokens)
}

func TestLoad_Defaults(t *testing.T) {
	// Ensure env vars are cleared
	os.Unsetenv("BEDROCK_MODEL_ID")
	os.Unsetenv("MAX_LABELS")
	os.Unsetenv("MIN_CONFIDENCE")

	cfg, err := Load()
	assert.NoError(t, err)

	// Verify defaults
	assert.Equal(t, "apac.amazon.nova-lite-v1:0", cfg.Bedrock.ModelID)
	assert.Equal(t, 20, cfg.Rekognition.MaxLabels)
	assert.Equal(t, 60.0, cfg.Rekognition.MinConfidence)
	assert.Equal(t, 50, cfg.Cache.MaxItems)
	assert.Equal(t, 30, cfg.Cache.MaxAgeDays)
}

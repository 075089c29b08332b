package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("UNIOFFICE_LICENSE_KEY", "")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":5001", cfg.ServerAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.UniofficeLicenseKey)
	assert.Equal(t, "http://localhost:11434", cfg.LocalLLMCfg.Url)
	assert.Equal(t, "mistral:latest", cfg.LocalLLMCfg.Model)
	assert.Equal(t, "/api/generate", cfg.LocalLLMCfg.GenerateEndpoint)
	assert.Equal(t, "/api/tags", cfg.LocalLLMCfg.TagsEndpoint)
	assert.Equal(t, 15*time.Second, cfg.LocalLLMCfg.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.LocalLLMCfg.StatusTimeout)
	assert.Equal(t, uint(3), cfg.LocalLLMCfg.ProbeRetry.Attempts)
	assert.Equal(t, 60*time.Second, cfg.HostedLLMCfg.RequestTimeout)
	assert.Equal(t, "claude-3-5-sonnet-20241022", cfg.HostedLLMCfg.Model)
	assert.False(t, cfg.HostedLLMCfg.Configured())
	assert.Equal(t, 4000, cfg.GenerationCfg.MaxTokens)
	assert.Equal(t, 0.7, cfg.GenerationCfg.Temperature)
	assert.Equal(t, 800, cfg.GenerationCfg.QuestionMaxTokens)
	assert.Equal(t, 0.3, cfg.GenerationCfg.QuestionTemperature)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":8080")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514")
	t.Setenv("LOCAL_LLM_SERVICE_URL", "http://ollama:11434")
	t.Setenv("LOCAL_LLM_TIMEOUT", "20s")
	t.Setenv("GENERATION_MAX_TOKENS", "2000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://app.example.com")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.True(t, cfg.HostedLLMCfg.Configured())
	assert.Equal(t, "claude-sonnet-4-20250514", cfg.HostedLLMCfg.Model)
	assert.Equal(t, "http://ollama:11434", cfg.LocalLLMCfg.Url)
	assert.Equal(t, 20*time.Second, cfg.LocalLLMCfg.RequestTimeout)
	assert.Equal(t, 2000, cfg.GenerationCfg.MaxTokens)
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.CORSAllowedOrigins)
}

func TestParse_CollectsValidationErrors(t *testing.T) {
	t.Setenv("GENERATION_TEMPERATURE", "3")
	t.Setenv("GENERATION_MAX_TOKENS", "0")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GENERATION_TEMPERATURE")
	assert.Contains(t, err.Error(), "GENERATION_MAX_TOKENS")
}

func TestHostedConfigured_WhitespaceKey(t *testing.T) {
	assert.False(t, HostedLLMConfig{APIKey: "   "}.Configured())
	assert.True(t, HostedLLMConfig{APIKey: "sk"}.Configured())
}

func TestGetEnvFile(t *testing.T) {
	assert.Equal(t, ".env.prod", getEnvFile("production"))
	assert.Equal(t, ".env.local", getEnvFile("dev"))
	assert.Equal(t, ".env.staging", getEnvFile("staging"))
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "APP_ENV", "COURSEGEN_CONFIG", "GEMINI_API_KEY", "GOOGLE_API_KEY",
	"GEMINI_TEXT_MODEL", "GEMINI_IMAGE_MODEL", "IMAGE_PACING_MS", "OUTLINE_ATTEMPTS",
	"PROVIDER_TIMEOUT", "LLM_RPS", "LLM_BURST", "CORS_ALLOW_ORIGINS", "OTEL_TRACES_STDOUT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.TextModel)
	assert.Equal(t, "gemini-2.5-flash-image", cfg.Gemini.ImageModel)
	assert.Equal(t, time.Second, cfg.ImagePacing())
	assert.Equal(t, 3, cfg.Pipeline.OutlineAttempts)
	assert.Equal(t, 90*time.Second, cfg.Pipeline.ProviderTimeout)
	assert.False(t, cfg.HasGeminiCredential())
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("GOOGLE_API_KEY", "g-key")
	t.Setenv("IMAGE_PACING_MS", "0")
	t.Setenv("OUTLINE_ATTEMPTS", "5")
	t.Setenv("PROVIDER_TIMEOUT", "15s")
	t.Setenv("LLM_RPS", "2.5")
	t.Setenv("LLM_BURST", "4")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("OTEL_TRACES_STDOUT", "true")

	cfg, err := Load([]string{"-port", ":7000"})
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Port, "env wins over the flag")
	assert.Equal(t, "production", cfg.Env)
	assert.True(t, cfg.HasGeminiCredential())
	assert.Equal(t, time.Duration(-1), cfg.ImagePacing(), "zero disables pacing")
	assert.Equal(t, 5, cfg.Pipeline.OutlineAttempts)
	assert.Equal(t, 15*time.Second, cfg.Pipeline.ProviderTimeout)
	assert.Equal(t, 2.5, cfg.LLM.RPS)
	assert.Equal(t, 4, cfg.LLM.Burst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
	assert.True(t, cfg.Tracing.Stdout)
}

func TestGeminiKeyPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "primary")
	t.Setenv("GOOGLE_API_KEY", "alias")
	cfg, err := LoadFrom("", "")
	require.NoError(t, err)
	assert.Equal(t, "primary", cfg.Gemini.APIKey)
}

func TestLoadFlagPort(t *testing.T) {
	clearEnv(t)
	cfg, err := Load([]string{"-port", "7000"})
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Port)
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "coursegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: staging
server:
  port: "8181"
gemini:
  apiKey: file-key
  textModel: gemini-x
pipeline:
  imagePacingMs: 250
  outlineAttempts: 2
  providerTimeout: 30s
llm:
  rps: 1
  burst: 2
cors:
  allowOrigins: ["https://app.example"]
`), 0o600))
	t.Setenv("GEMINI_TEXT_MODEL", "gemini-from-env")

	cfg, err := Load([]string{"-config", path})
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Env)
	assert.Equal(t, ":8181", cfg.Port)
	assert.Equal(t, "file-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-from-env", cfg.Gemini.TextModel)
	assert.Equal(t, "gemini-2.5-flash-image", cfg.Gemini.ImageModel)
	assert.Equal(t, 250*time.Millisecond, cfg.ImagePacing())
	assert.Equal(t, 2, cfg.Pipeline.OutlineAttempts)
	assert.Equal(t, 30*time.Second, cfg.Pipeline.ProviderTimeout)
	assert.Equal(t, []string{"https://app.example"}, cfg.CORS.AllowOrigins)
}

func TestLoadRejectsBadInput(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	unknown := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("gemini:\n  apikey: x\n"), 0o600))
	_, err := Load([]string{"-config", unknown})
	assert.Error(t, err, "unknown keys are rejected")

	_, err = Load([]string{"-config", filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)

	t.Setenv("OUTLINE_ATTEMPTS", "0")
	_, err = Load(nil)
	assert.Error(t, err)

	t.Setenv("OUTLINE_ATTEMPTS", "many")
	_, err = Load(nil)
	assert.Error(t, err)

	_, err = Load([]string{"-nope"})
	assert.Error(t, err)
}

func TestEmptyYAMLFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	cfg, err := LoadFrom(path, "")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Port)
}

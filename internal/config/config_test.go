package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "gemini-2.0-flash-exp", cfg.Gemini.Model)
	assert.Empty(t, cfg.Gemini.APIKey)
	assert.Equal(t, "data/vector_db", cfg.Retrieval.VectorDBPath)
	assert.Equal(t, 5, cfg.Retrieval.MaxResults)
	assert.Equal(t, "college_student", cfg.Persona.Default)
	assert.Equal(t, 1000, cfg.Persona.MaxContextLength)
	assert.Equal(t, "structured", cfg.Output.DefaultFormat)
	assert.Equal(t, 2000, cfg.Output.MaxResponseLength)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Gemini.Model, cfg.Gemini.Model)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
gemini:
  api_key: file-key
  model: gemini-1.5-pro
persona:
  default: developer
logging:
  level: warn
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-1.5-pro", cfg.Gemini.Model)
	assert.Equal(t, "developer", cfg.Persona.Default)
	assert.Equal(t, "warn", cfg.Logging.Level)

	// Untouched sections keep their defaults.
	assert.Equal(t, 5, cfg.Retrieval.MaxResults)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gemini: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DEFAULT_MODEL", "gemini-exp")
	t.Setenv("VECTOR_DB_PATH", "/tmp/vdb")
	t.Setenv("MAX_RETRIEVAL_RESULTS", "9")
	t.Setenv("DEFAULT_PERSONA", "businessman")
	t.Setenv("MAX_CONTEXT_LENGTH", "500")
	t.Setenv("DEFAULT_OUTPUT_FORMAT", "json")
	t.Setenv("MAX_RESPONSE_LENGTH", "4000")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DEBUG", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-exp", cfg.Gemini.Model)
	assert.Equal(t, "/tmp/vdb", cfg.Retrieval.VectorDBPath)
	assert.Equal(t, 9, cfg.Retrieval.MaxResults)
	assert.Equal(t, "businessman", cfg.Persona.Default)
	assert.Equal(t, 500, cfg.Persona.MaxContextLength)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.Equal(t, 4000, cfg.Output.MaxResponseLength)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Debug)
}

func TestEnvOverridesBadNumberIgnored(t *testing.T) {
	t.Setenv("MAX_RETRIEVAL_RESULTS", "lots")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Retrieval.MaxResults)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY is required")

	cfg.Gemini.APIKey = "key"
	assert.NoError(t, cfg.Validate())

	cfg.Retrieval.MaxResults = 0
	assert.Error(t, cfg.Validate())
}

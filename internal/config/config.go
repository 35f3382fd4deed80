// Package config loads PersonaPilot configuration from an optional YAML file
// with environment-variable overrides on top.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all PersonaPilot configuration.
type Config struct {
	// Gemini API settings
	Gemini GeminiConfig `yaml:"gemini"`

	// Retrieval settings
	Retrieval RetrievalConfig `yaml:"retrieval"`

	// Persona settings
	Persona PersonaConfig `yaml:"persona"`

	// Output settings
	Output OutputConfig `yaml:"output"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// GeminiConfig configures the model gateway.
type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// RetrievalConfig configures the RAG document store.
type RetrievalConfig struct {
	VectorDBPath   string `yaml:"vector_db_path"`
	EmbeddingModel string `yaml:"embedding_model"`
	MaxResults     int    `yaml:"max_results"`
}

// PersonaConfig configures persona selection and context.
type PersonaConfig struct {
	Default          string `yaml:"default"`
	MaxContextLength int    `yaml:"max_context_length"`
}

// OutputConfig configures response formatting.
type OutputConfig struct {
	DefaultFormat     string `yaml:"default_format"`
	MaxResponseLength int    `yaml:"max_response_length"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Debug bool   `yaml:"debug"`
	File  string `yaml:"file"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Gemini: GeminiConfig{
			Model: "gemini-2.0-flash-exp",
		},
		Retrieval: RetrievalConfig{
			VectorDBPath:   "data/vector_db",
			EmbeddingModel: "all-MiniLM-L6-v2",
			MaxResults:     5,
		},
		Persona: PersonaConfig{
			Default:          "college_student",
			MaxContextLength: 1000,
		},
		Output: OutputConfig{
			DefaultFormat:     "structured",
			MaxResponseLength: 2000,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file, falling back to defaults when
// the file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variables over file values. Numeric
// variables that fail to parse are ignored.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.Gemini.APIKey = key
	}
	if model := os.Getenv("DEFAULT_MODEL"); model != "" {
		c.Gemini.Model = model
	}

	if path := os.Getenv("VECTOR_DB_PATH"); path != "" {
		c.Retrieval.VectorDBPath = path
	}
	if model := os.Getenv("EMBEDDING_MODEL"); model != "" {
		c.Retrieval.EmbeddingModel = model
	}
	if v := os.Getenv("MAX_RETRIEVAL_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Retrieval.MaxResults = n
		}
	}

	if persona := os.Getenv("DEFAULT_PERSONA"); persona != "" {
		c.Persona.Default = persona
	}
	if v := os.Getenv("MAX_CONTEXT_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Persona.MaxContextLength = n
		}
	}

	if format := os.Getenv("DEFAULT_OUTPUT_FORMAT"); format != "" {
		c.Output.DefaultFormat = format
	}
	if v := os.Getenv("MAX_RESPONSE_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Output.MaxResponseLength = n
		}
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
	if v := os.Getenv("DEBUG"); v != "" {
		c.Logging.Debug = strings.EqualFold(v, "true")
	}
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.Gemini.Model == "" {
		return fmt.Errorf("model name must not be empty")
	}
	if c.Retrieval.MaxResults <= 0 {
		return fmt.Errorf("max retrieval results must be positive, got %d", c.Retrieval.MaxResults)
	}
	return nil
}

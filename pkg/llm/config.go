package llm

import (
	"fmt"
	"strings"

	"github.com/hiox2004/GapSight/pkg/config"
)

// Config holds provider selection and credentials
type Config struct {
	Provider string
	Model    string
	APIKey   string
	APIURL   string
}

// LoadConfig loads LLM configuration from LLM_* env vars
func LoadConfig() Config {
	return Config{
		Provider: config.GetEnv("LLM_PROVIDER", "openai"),
		Model:    config.GetEnv("LLM_MODEL", ""),
		APIKey:   config.GetEnv("LLM_API_KEY", ""),
		APIURL:   config.GetEnv("LLM_API_URL", ""),
	}
}

// Configured reports whether the config can produce a usable provider.
// Ollama needs no API key; everything else does.
func (c Config) Configured() bool {
	if strings.EqualFold(c.Provider, "ollama") {
		return c.Model != ""
	}
	return c.APIKey != "" && c.Model != ""
}

// NewProvider builds the provider named by cfg.Provider
func NewProvider(cfg Config) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai", "groq":
		// Groq exposes an OpenAI-compatible chat completions API
		return NewOpenAIProvider(cfg), nil
	case "ollama":
		return NewOllamaProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

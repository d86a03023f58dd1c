package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the model backend.
type Config struct {
	// Provider is "anthropic", "openai", or "mock".
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Retry     RetryConfig

	// Timeout bounds one request including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string

	// BaseURL points the client at an OpenAI-compatible API.
	BaseURL string
}

// RetryConfig shapes the backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

func DefaultConfig() Config {
	return Config{
		Provider:  "anthropic",
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv starts from defaults and overlays ZUKAN_* environment
// variables.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	override(&cfg.Provider, "ZUKAN_LLM_PROVIDER")
	override(&cfg.Anthropic.APIKey, "ZUKAN_ANTHROPIC_API_KEY")
	override(&cfg.Anthropic.Model, "ZUKAN_ANTHROPIC_MODEL")
	override(&cfg.OpenAI.APIKey, "ZUKAN_OPENAI_API_KEY")
	override(&cfg.OpenAI.Model, "ZUKAN_OPENAI_MODEL")
	override(&cfg.OpenAI.BaseURL, "ZUKAN_OPENAI_BASE_URL")
	return cfg
}

func override(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig probes the conventional key variables, OpenAI first,
// and returns a config for the first provider whose key is set. The
// second result is false when no key was found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	return Config{}, false
}

// Validate checks that the selected provider can actually be built.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("ZUKAN_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("ZUKAN_OPENAI_API_KEY is required for the openai provider")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown provider: %q", c.Provider)
	}
	return nil
}

// Package config loads application configuration from an optional YAML
// file with ZUKAN_* environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Update   UpdateConfig   `mapstructure:"update"`
}

// CatalogConfig controls where the term catalog is loaded from.
// File takes priority over URL; the embedded dataset is the fallback.
type CatalogConfig struct {
	File    string `mapstructure:"file"`
	URL     string `mapstructure:"url"`
	Timeout int    `mapstructure:"timeout"` // seconds
}

// DatabaseConfig holds the sqlite database location.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig controls file logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// LLMConfig selects the explanation provider. Empty provider disables
// the feature.
type LLMConfig struct {
	Provider       string `mapstructure:"provider"`
	AnthropicKey   string `mapstructure:"anthropic_key"`
	AnthropicModel string `mapstructure:"anthropic_model"`
	OpenAIKey      string `mapstructure:"openai_key"`
	OpenAIModel    string `mapstructure:"openai_model"`
}

// Enabled reports whether an explanation provider is configured, either
// explicitly or via a discoverable API key.
func (c LLMConfig) Enabled() bool {
	if c.Provider != "" {
		return true
	}
	return c.AnthropicKey != "" || c.OpenAIKey != ""
}

// UpdateConfig controls the release check.
type UpdateConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	ReleaseURL string `mapstructure:"release_url"`
}

// Load reads configuration from zukan.yaml in the user config directory
// or the current directory, applies defaults, then environment overrides.
// A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("zukan")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "zukan"))
	}

	setDefaults(v)

	v.SetEnvPrefix("zukan")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog.file", "")
	v.SetDefault("catalog.url", "")
	v.SetDefault("catalog.timeout", 10)

	v.SetDefault("database.path", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.anthropic_key", "")
	v.SetDefault("llm.anthropic_model", "claude-haiku")
	v.SetDefault("llm.openai_key", "")
	v.SetDefault("llm.openai_model", "gpt-4o-mini")

	v.SetDefault("update.enabled", true)
	v.SetDefault("update.release_url", "https://api.github.com/repos/ayumu/zukan/releases/latest")
}

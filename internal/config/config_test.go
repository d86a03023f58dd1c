package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Catalog.Timeout != 10 {
		t.Fatalf("unexpected catalog timeout: %d", cfg.Catalog.Timeout)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("unexpected log level: %q", cfg.Log.Level)
	}
	if !cfg.Update.Enabled {
		t.Fatal("expected update check enabled by default")
	}
	if cfg.LLM.Enabled() {
		t.Fatal("expected LLM disabled without keys")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	yaml := `
catalog:
  url: https://example.com/terms.json
  timeout: 5
log:
  level: debug
llm:
  provider: openai
  openai_key: sk-test
`
	if err := os.WriteFile(filepath.Join(dir, "zukan.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Catalog.URL != "https://example.com/terms.json" {
		t.Fatalf("unexpected catalog url: %q", cfg.Catalog.URL)
	}
	if cfg.Catalog.Timeout != 5 {
		t.Fatalf("unexpected timeout: %d", cfg.Catalog.Timeout)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.Log.Level)
	}
	if !cfg.LLM.Enabled() {
		t.Fatal("expected LLM enabled")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	yaml := "log:\n  level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, "zukan.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ZUKAN_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("expected env override, got %q", cfg.Log.Level)
	}
}

func TestEnvProvidesLLMKeys(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("ZUKAN_LLM_ANTHROPIC_KEY", "sk-ant-env")
	t.Setenv("ZUKAN_LLM_OPENAI_KEY", "sk-oai-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LLM.AnthropicKey != "sk-ant-env" {
		t.Fatalf("anthropic key not picked up from env: %q", cfg.LLM.AnthropicKey)
	}
	if cfg.LLM.OpenAIKey != "sk-oai-env" {
		t.Fatalf("openai key not picked up from env: %q", cfg.LLM.OpenAIKey)
	}
	if !cfg.LLM.Enabled() {
		t.Fatal("expected LLM enabled with keys from env")
	}
}

func TestMalformedFileIsError(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.WriteFile(filepath.Join(dir, "zukan.yaml"), []byte("catalog: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestLLMEnabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  LLMConfig
		want bool
	}{
		{"empty", LLMConfig{}, false},
		{"explicit provider", LLMConfig{Provider: "mock"}, true},
		{"anthropic key only", LLMConfig{AnthropicKey: "sk"}, true},
		{"openai key only", LLMConfig{OpenAIKey: "sk"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Enabled(); got != tt.want {
				t.Fatalf("Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

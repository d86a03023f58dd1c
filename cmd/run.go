package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ayumu/zukan/internal/app"
	"github.com/ayumu/zukan/internal/auth"
	"github.com/ayumu/zukan/internal/catalog"
	"github.com/ayumu/zukan/internal/config"
	"github.com/ayumu/zukan/internal/explain"
	"github.com/ayumu/zukan/internal/favorites"
	"github.com/ayumu/zukan/internal/llm"
	"github.com/ayumu/zukan/internal/logging"
	"github.com/ayumu/zukan/internal/selfupdate"
	"github.com/ayumu/zukan/internal/store"
)

// runApp loads config, opens the store, builds services, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closer, err := logging.Setup(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer closer.Close()

	dbPath, err := resolveDBPath(cmd, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	authSession := auth.NewSession(st.ProfileRepo())
	favService := favorites.NewService(st.FavoriteRepo(), authSession)

	deps := app.Deps{
		Provider: catalog.NewProvider(catalog.ProviderConfig{
			File:    cfg.Catalog.File,
			URL:     cfg.Catalog.URL,
			Timeout: time.Duration(cfg.Catalog.Timeout) * time.Second,
		}),
		Auth:      authSession,
		Favorites: favService,
		Views:     st.ViewEventRepo(),
		Version:   version,
	}

	if llmCfg, ok := buildLLMConfig(cfg.LLM); ok {
		provider, err := llm.NewProvider(llmCfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Quiz explanations will be unavailable.")
		} else {
			deps.Explain = explain.NewService(provider, explain.DefaultConfig())
			log.Infof("quiz explanations enabled via %s", provider.ModelID())
		}
	}

	if cfg.Update.Enabled {
		deps.Updates = selfupdate.NewChecker()
	}

	if err := app.Run(deps); err != nil {
		return err
	}

	// A favorite write that failed mid-session gets one last chance
	// before the store closes.
	if favService.Pending() {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
		defer cancel()
		if err := favService.Flush(ctx); err != nil {
			log.Warnf("flushing favorites on exit: %v", err)
		}
	}
	return nil
}

// buildLLMConfig merges the config file with environment discovery. The
// file wins when it names a provider or carries a key.
func buildLLMConfig(fileCfg config.LLMConfig) (llm.Config, bool) {
	if !fileCfg.Enabled() {
		return llm.DiscoverConfig()
	}

	cfg := llm.ConfigFromEnv()
	if fileCfg.Provider != "" {
		cfg.Provider = fileCfg.Provider
	} else if fileCfg.AnthropicKey != "" {
		cfg.Provider = "anthropic"
	} else {
		cfg.Provider = "openai"
	}
	if fileCfg.AnthropicKey != "" {
		cfg.Anthropic.APIKey = fileCfg.AnthropicKey
	}
	if fileCfg.AnthropicModel != "" {
		cfg.Anthropic.Model = fileCfg.AnthropicModel
	}
	if fileCfg.OpenAIKey != "" {
		cfg.OpenAI.APIKey = fileCfg.OpenAIKey
	}
	if fileCfg.OpenAIModel != "" {
		cfg.OpenAI.Model = fileCfg.OpenAIModel
	}
	return cfg, true
}

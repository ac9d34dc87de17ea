package main

import (
	"stratgen/internal/config"
	"stratgen/internal/llm"
	"stratgen/internal/llm/gemini"
	"stratgen/internal/llm/ollama"
)

// newProvider returns nil when no credential selects a remote provider.
func newProvider(cfg config.Config) llm.Provider {
	switch cfg.Provider() {
	case config.ProviderGemini:
		var opts []gemini.Option
		if cfg.GeminiBaseURL != "" {
			opts = append(opts, gemini.WithBaseURL(cfg.GeminiBaseURL))
		}
		return gemini.New(cfg.GeminiAPIKey, cfg.Model, opts...)
	case config.ProviderOllama:
		return ollama.New(cfg.OllamaBaseURL, cfg.OllamaModel)
	default:
		return nil
	}
}

// Package provider selects a concrete text-generation client from
// configuration.
package provider

import (
	"github.com/autodoc-ai/autodoc/ai"
	"github.com/autodoc-ai/autodoc/ai/ollama"
	"github.com/autodoc-ai/autodoc/ai/openrouter"
	"github.com/autodoc-ai/autodoc/am"
	"github.com/autodoc-ai/autodoc/errors"
)

// Provider represents an LLM provider type
type Provider string

const (
	// ProviderLocal uses local inference (Ollama, LocalAI)
	ProviderLocal Provider = "local"
	// ProviderOpenRouter uses OpenRouter.ai API
	ProviderOpenRouter Provider = "openrouter"
	// ProviderAuto automatically selects based on configuration
	ProviderAuto Provider = "auto"
)

// ParseProvider converts a string to a Provider type
func ParseProvider(s string) (Provider, error) {
	switch s {
	case "local", "ollama", "localai":
		return ProviderLocal, nil
	case "openrouter", "or":
		return ProviderOpenRouter, nil
	case "auto", "":
		return ProviderAuto, nil
	default:
		return "", errors.Newf("unknown provider: %s (valid: local, openrouter, auto)", s)
	}
}

// New creates an AI client for a specific provider.
// Use ProviderAuto to select based on configuration:
// local inference (if enabled), then OpenRouter (if API key set).
func New(cfg *am.Config, p Provider) (ai.Client, error) {
	switch p {
	case ProviderLocal:
		return newLocalClient(cfg), nil
	case ProviderOpenRouter:
		return newOpenRouterClient(cfg), nil
	case ProviderAuto:
		if cfg.LocalInference.Enabled {
			return newLocalClient(cfg), nil
		}
		if cfg.OpenRouter.APIKey != "" {
			return newOpenRouterClient(cfg), nil
		}
		return nil, errors.New("no text-generation provider configured: enable local_inference or set an OpenRouter API key")
	default:
		return nil, errors.Newf("unknown provider %q", p)
	}
}

func newLocalClient(cfg *am.Config) ai.Client {
	return ollama.NewClient(ollama.Config{
		BaseURL:        cfg.LocalInference.BaseURL,
		Model:          cfg.LocalInference.Model,
		ContextSize:    cfg.LocalInference.ContextSize,
		TimeoutSeconds: cfg.LocalInference.TimeoutSeconds,
	})
}

func newOpenRouterClient(cfg *am.Config) ai.Client {
	return openrouter.NewClient(openrouter.Config{
		APIKey:      cfg.OpenRouter.APIKey,
		Model:       cfg.OpenRouter.Model,
		Temperature: cfg.OpenRouter.Temperature,
		MaxTokens:   cfg.OpenRouter.MaxTokens,
	})
}

// Verify interfaces are implemented
var _ ai.Client = (*ollama.Client)(nil)
var _ ai.Client = (*openrouter.Client)(nil)

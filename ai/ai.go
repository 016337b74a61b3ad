// Package ai defines the narrow text-generation interface the documentation
// pipeline depends on. Concrete clients live in the ollama and openrouter
// subpackages; the provider subpackage selects one from configuration.
package ai

import "context"

// ChatRequest represents a high-level request to the AI
type ChatRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // Override default temperature
	MaxTokens    *int     // Override default max tokens
	Model        *string  // Override default model
}

// Usage reports token consumption for a single request
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// ChatResponse represents the AI response
type ChatResponse struct {
	Content string
	Usage   Usage
}

// Client is the interface all LLM providers implement.
// The pipeline issues calls synchronously, one at a time.
type Client interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)

	// ModelName returns the configured model identifier
	ModelName() string

	// Name returns the provider name ("local", "openrouter")
	Name() string
}

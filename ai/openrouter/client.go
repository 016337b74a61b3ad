// Package openrouter implements the ai.Client interface against the
// OpenRouter.ai chat completions API.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/autodoc-ai/autodoc/ai"
	"github.com/autodoc-ai/autodoc/errors"
	"github.com/autodoc-ai/autodoc/internal/httpclient"
)

const (
	// DefaultModel is the fallback model when none is specified
	DefaultModel = "openai/gpt-4o-mini"

	defaultBaseURL = "https://openrouter.ai/api/v1"
)

// Config holds OpenRouter client configuration
type Config struct {
	APIKey      string
	Model       string
	Temperature *float64           // nil = use default (0.2)
	MaxTokens   *int               // nil = use default (1000)
	Logger      *zap.SugaredLogger // nil = nop logger
}

// Client represents an OpenRouter.ai API client
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	config     Config
	logger     *zap.SugaredLogger
}

// NewClient creates a new OpenRouter.ai client with deterministic defaults
func NewClient(config Config) *Client {
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.Temperature == nil {
		defaultTemp := 0.2
		config.Temperature = &defaultTemp
	}
	if config.MaxTokens == nil {
		defaultTokens := 1000
		config.MaxTokens = &defaultTokens
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Client{
		apiKey:     config.APIKey,
		baseURL:    defaultBaseURL,
		httpClient: httpclient.NewSaferClient(120 * time.Second).Client,
		config:     config,
		logger:     logger,
	}
}

// IsConfigured reports whether the client has an API key
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// chatCompletionRequest represents a request to the chat completions endpoint
type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionResponse represents the response from chat completions
type chatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int     `json:"index"`
		Message      message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Chat sends a chat completion request with simple linear-backoff retries.
func (c *Client) Chat(ctx context.Context, req ai.ChatRequest) (*ai.ChatResponse, error) {
	if c.apiKey == "" {
		return nil, errors.New("OpenRouter API key not configured")
	}

	temperature := *c.config.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	maxTokens := *c.config.MaxTokens
	if req.MaxTokens != nil {
		maxTokens = *req.MaxTokens
	}
	model := c.config.Model
	if req.Model != nil && *req.Model != "" {
		model = *req.Model
	}

	c.logger.Debugw("AI chat request",
		"model", model,
		"temperature", temperature,
		"max_tokens", maxTokens,
	)

	messages := []message{}
	if req.SystemPrompt != "" {
		messages = append(messages, message{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, message{Role: "user", Content: req.UserPrompt})

	apiReq := chatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	const maxRetries = 3
	var resp *chatCompletionResponse
	var err error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * time.Second
			c.logger.Debugw("retrying OpenRouter request", "attempt", attempt, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		resp, err = c.createChatCompletion(ctx, apiReq)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "OpenRouter request failed after %d attempts", maxRetries)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("no completion choices returned")
	}

	return &ai.ChatResponse{
		Content: resp.Choices[0].Message.Content,
		Usage: ai.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// createChatCompletion sends one chat completion request to OpenRouter
func (c *Client) createChatCompletion(ctx context.Context, req chatCompletionRequest) (*chatCompletionResponse, error) {
	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("X-Title", "autodoc")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var chatResp chatCompletionResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal response")
	}

	return &chatResp, nil
}

// ModelName returns the configured model identifier
func (c *Client) ModelName() string {
	return c.config.Model
}

// Name returns the provider name
func (c *Client) Name() string {
	return "openrouter"
}

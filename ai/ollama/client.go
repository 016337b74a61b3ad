// Package ollama implements the ai.Client interface against a local
// OpenAI-compatible inference server (Ollama, LocalAI, llama.cpp server).
package ollama

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

// Config holds local inference client configuration
type Config struct {
	BaseURL        string
	Model          string
	ContextSize    int // 0 = model default
	TimeoutSeconds int
	Logger         *zap.SugaredLogger // nil = nop logger
}

// Client talks to a local inference server through its OpenAI-compatible
// chat completions endpoint.
type Client struct {
	baseURL     string
	model       string
	contextSize int
	httpClient  *http.Client
	logger      *zap.SugaredLogger
}

// NewClient creates a client for local inference
func NewClient(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if cfg.TimeoutSeconds <= 0 {
		timeout = time.Hour // local models can be slow; the run is synchronous anyway
	}
	return &Client{
		baseURL:     cfg.BaseURL,
		model:       cfg.Model,
		contextSize: cfg.ContextSize,
		httpClient:  httpclient.NewLocalClient(timeout).Client,
		logger:      logger,
	}
}

// chatCompletionRequest matches the OpenAI API format (Ollama is compatible)
type chatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []chatMessage   `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  *completionOpts `json:"options,omitempty"` // Ollama-specific options
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionOpts struct {
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"num_predict,omitempty"` // Ollama uses num_predict
	NumCtx      int     `json:"num_ctx,omitempty"`     // Context window size
}

// chatCompletionResponse matches the OpenAI API format
type chatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage,omitempty"`
}

// Chat sends a prompt to the local inference server and returns the reply.
// Temperature defaults to 0 so documentation runs are reproducible.
func (c *Client) Chat(ctx context.Context, req ai.ChatRequest) (*ai.ChatResponse, error) {
	model := c.model
	if req.Model != nil && *req.Model != "" {
		model = *req.Model
	}

	temperature := 0.0
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	maxTokens := 0
	if req.MaxTokens != nil {
		maxTokens = *req.MaxTokens
	}

	reqBody := chatCompletionRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
		Stream: false,
		Options: &completionOpts{
			Temperature: temperature,
			MaxTokens:   maxTokens,
			NumCtx:      c.contextSize,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal request")
	}

	endpoint := c.baseURL + "/v1/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.logger.Debugw("local inference request", "endpoint", endpoint, "model", model)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "local inference request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, errors.Newf("local inference returned status %d: %s", resp.StatusCode, string(body))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, errors.Wrap(err, "failed to decode response")
	}

	if len(completion.Choices) == 0 {
		return nil, errors.New("no completion choices returned")
	}

	out := &ai.ChatResponse{Content: completion.Choices[0].Message.Content}
	if completion.Usage != nil {
		out.Usage = ai.Usage{
			PromptTokens:     completion.Usage.PromptTokens,
			CompletionTokens: completion.Usage.CompletionTokens,
			TotalTokens:      completion.Usage.TotalTokens,
		}
	}
	return out, nil
}

// ModelName returns the configured local model name
func (c *Client) ModelName() string {
	return c.model
}

// Name returns the provider name
func (c *Client) Name() string {
	return "local"
}

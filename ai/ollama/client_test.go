package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autodoc-ai/autodoc/ai"
)

func TestClient_Chat(t *testing.T) {
	t.Run("successful completion", func(t *testing.T) {
		var captured chatCompletionRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			json.NewEncoder(w).Encode(map[string]interface{}{
				"choices": []map[string]interface{}{
					{"message": map[string]string{"role": "assistant", "content": "Returns one."}},
				},
				"usage": map[string]int{"prompt_tokens": 12, "completion_tokens": 4, "total_tokens": 16},
			})
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, Model: "llama3", ContextSize: 4096})
		resp, err := client.Chat(context.Background(), ai.ChatRequest{
			SystemPrompt: "You document functions.",
			UserPrompt:   "def f(): return 1",
		})
		require.NoError(t, err)

		assert.Equal(t, "Returns one.", resp.Content)
		assert.Equal(t, 16, resp.Usage.TotalTokens)

		require.Len(t, captured.Messages, 2)
		assert.Equal(t, "system", captured.Messages[0].Role)
		assert.Equal(t, "llama3", captured.Model)
		assert.False(t, captured.Stream)
		require.NotNil(t, captured.Options)
		assert.Equal(t, 0.0, captured.Options.Temperature)
		assert.Equal(t, 4096, captured.Options.NumCtx)
	})

	t.Run("model override", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req chatCompletionRequest
			json.NewDecoder(r.Body).Decode(&req)
			assert.Equal(t, "codellama", req.Model)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"choices": []map[string]interface{}{
					{"message": map[string]string{"content": "ok"}},
				},
			})
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, Model: "llama3"})
		override := "codellama"
		_, err := client.Chat(context.Background(), ai.ChatRequest{UserPrompt: "x", Model: &override})
		require.NoError(t, err)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not found", http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, Model: "missing"})
		_, err := client.Chat(context.Background(), ai.ChatRequest{UserPrompt: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("empty choices is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, Model: "llama3"})
		_, err := client.Chat(context.Background(), ai.ChatRequest{UserPrompt: "x"})
		require.Error(t, err)
	})
}

func TestClient_Identity(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://localhost:11434", Model: "llama3"})
	assert.Equal(t, "llama3", client.ModelName())
	assert.Equal(t, "local", client.Name())
}

package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTestConfig() *Config {
	return &Config{
		Database:   DatabaseConfig{Path: "autodoc.db"},
		Generation: GenerationConfig{MaxCommentWidth: 120},
		LocalInference: LocalInferenceConfig{
			Enabled:        true,
			BaseURL:        "http://localhost:11434",
			Model:          "llama3",
			TimeoutSeconds: 3600,
		},
		Output: OutputConfig{
			DocsDir:       "docs",
			TestsDir:      "test",
			CommentPrefix: "comment_",
			TestPrefix:    "test_",
			DocPrefix:     "doc_",
		},
	}
}

func TestValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, defaultTestConfig().Validate())
	})

	t.Run("zero comment width rejected", func(t *testing.T) {
		cfg := defaultTestConfig()
		cfg.Generation.MaxCommentWidth = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("enabled local inference requires base url", func(t *testing.T) {
		cfg := defaultTestConfig()
		cfg.LocalInference.BaseURL = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("no provider at all rejected", func(t *testing.T) {
		cfg := defaultTestConfig()
		cfg.LocalInference.Enabled = false
		cfg.OpenRouter.APIKey = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("openrouter key satisfies provider requirement", func(t *testing.T) {
		cfg := defaultTestConfig()
		cfg.LocalInference.Enabled = false
		cfg.OpenRouter.APIKey = "sk-or-test"
		assert.NoError(t, cfg.Validate())
	})
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "autodoc.toml")
	content := []byte(`
[generation]
max_comment_width = 100

[local_inference]
enabled = true
base_url = "http://127.0.0.1:11434"
model = "codellama"
timeout_seconds = 120
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Generation.MaxCommentWidth)
	assert.Equal(t, "codellama", cfg.LocalInference.Model)
	// Values absent from the file come from defaults
	assert.Equal(t, "docs", cfg.Output.DocsDir)
	assert.Equal(t, "autodoc.db", cfg.Database.Path)
}

func TestSaveTo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "autodoc.toml")

	cfg := defaultTestConfig()
	cfg.Generation.MaxCommentWidth = 80
	require.NoError(t, SaveTo(cfg, path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 80, loaded.Generation.MaxCommentWidth)

	t.Run("save keeps a backup of the previous file", func(t *testing.T) {
		cfg.Generation.MaxCommentWidth = 90
		require.NoError(t, SaveTo(cfg, path))
		_, err := os.Stat(path + ".back")
		assert.NoError(t, err)
	})

	t.Run("invalid config is not saved", func(t *testing.T) {
		bad := defaultTestConfig()
		bad.Output.DocsDir = ""
		assert.Error(t, SaveTo(bad, filepath.Join(dir, "bad.toml")))
	})
}

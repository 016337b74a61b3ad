package am

// Config represents the core autodoc configuration
type Config struct {
	Database       DatabaseConfig       `mapstructure:"database" toml:"database"`
	Generation     GenerationConfig     `mapstructure:"generation" toml:"generation"`
	LocalInference LocalInferenceConfig `mapstructure:"local_inference" toml:"local_inference"`
	OpenRouter     OpenRouterConfig     `mapstructure:"openrouter" toml:"openrouter"`
	Output         OutputConfig         `mapstructure:"output" toml:"output"`
}

// DatabaseConfig configures the SQLite database used for AI usage tracking
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// GenerationConfig configures documentation generation behavior
type GenerationConfig struct {
	// MaxCommentWidth is the maximum rendered comment line width
	MaxCommentWidth int `mapstructure:"max_comment_width" toml:"max_comment_width"`

	// RequestsPerMinute rate-limits calls to the text-generation provider.
	// 0 disables rate limiting.
	RequestsPerMinute int `mapstructure:"requests_per_minute" toml:"requests_per_minute"`
}

// LocalInferenceConfig configures local LLM inference (Ollama, LocalAI, etc.)
type LocalInferenceConfig struct {
	Enabled        bool   `mapstructure:"enabled" toml:"enabled"`
	BaseURL        string `mapstructure:"base_url" toml:"base_url"`
	Model          string `mapstructure:"model" toml:"model"`
	ContextSize    int    `mapstructure:"context_size" toml:"context_size"` // 0 = model default
	TimeoutSeconds int    `mapstructure:"timeout_seconds" toml:"timeout_seconds"`
}

// OpenRouterConfig configures the OpenRouter.ai cloud provider.
// The API key is bound to AUTODOC_OPENROUTER_API_KEY / OPENROUTER_API_KEY
// and is never written back to disk.
type OpenRouterConfig struct {
	APIKey      string   `mapstructure:"api_key" toml:"-"`
	Model       string   `mapstructure:"model" toml:"model"`
	Temperature *float64 `mapstructure:"temperature" toml:"temperature,omitempty"` // nil = client default
	MaxTokens   *int     `mapstructure:"max_tokens" toml:"max_tokens,omitempty"`   // nil = client default
}

// OutputConfig configures where pipeline artifacts are written.
// Directories are relative to the input file's directory.
type OutputConfig struct {
	DocsDir       string `mapstructure:"docs_dir" toml:"docs_dir"`             // markdown docs (default: docs)
	TestsDir      string `mapstructure:"tests_dir" toml:"tests_dir"`           // generated tests (default: test)
	CommentPrefix string `mapstructure:"comment_prefix" toml:"comment_prefix"` // annotated source filename prefix (default: comment_)
	TestPrefix    string `mapstructure:"test_prefix" toml:"test_prefix"`       // test filename prefix (default: test_)
	DocPrefix     string `mapstructure:"doc_prefix" toml:"doc_prefix"`         // doc filename prefix (default: doc_)
}

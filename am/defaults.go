package am

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Database defaults
	v.SetDefault("database.path", "autodoc.db")

	// Generation defaults
	v.SetDefault("generation.max_comment_width", 120)
	v.SetDefault("generation.requests_per_minute", 0) // unlimited

	// Local Inference (Ollama) defaults
	v.SetDefault("local_inference.enabled", true)
	v.SetDefault("local_inference.base_url", "http://localhost:11434")
	v.SetDefault("local_inference.model", "llama3")
	v.SetDefault("local_inference.context_size", 0)
	v.SetDefault("local_inference.timeout_seconds", 3600)

	// OpenRouter defaults
	v.SetDefault("openrouter.model", "openai/gpt-4o-mini") // Cost-effective default

	// Output defaults (mirror the layout the annotator legacy tooling used)
	v.SetDefault("output.docs_dir", "docs")
	v.SetDefault("output.tests_dir", "test")
	v.SetDefault("output.comment_prefix", "comment_")
	v.SetDefault("output.test_prefix", "test_")
	v.SetDefault("output.doc_prefix", "doc_")
}

// BindSensitiveEnvVars binds secrets to environment variables so they never
// need to live in a config file on disk.
func BindSensitiveEnvVars(v *viper.Viper) {
	v.BindEnv("openrouter.api_key", "AUTODOC_OPENROUTER_API_KEY", "OPENROUTER_API_KEY")
}

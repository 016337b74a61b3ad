package am

import "github.com/autodoc-ai/autodoc/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Generation.MaxCommentWidth <= 0 {
		return errors.Newf("generation.max_comment_width must be > 0, got %d", c.Generation.MaxCommentWidth)
	}
	if c.Generation.RequestsPerMinute < 0 {
		return errors.Newf("generation.requests_per_minute must be >= 0, got %d", c.Generation.RequestsPerMinute)
	}

	// Validate local inference configuration only when enabled
	if c.LocalInference.Enabled {
		if c.LocalInference.BaseURL == "" {
			return errors.New("local_inference.base_url cannot be empty when enabled")
		}
		if c.LocalInference.Model == "" {
			return errors.New("local_inference.model cannot be empty when enabled")
		}
		if c.LocalInference.TimeoutSeconds <= 0 {
			return errors.Newf("local_inference.timeout_seconds must be > 0, got %d", c.LocalInference.TimeoutSeconds)
		}
	}

	// Without local inference an OpenRouter key is the only way to generate text
	if !c.LocalInference.Enabled && c.OpenRouter.APIKey == "" {
		return errors.New("openrouter.api_key is required when local_inference is disabled")
	}

	if c.Output.DocsDir == "" {
		return errors.New("output.docs_dir cannot be empty")
	}
	if c.Output.TestsDir == "" {
		return errors.New("output.tests_dir cannot be empty")
	}

	return nil
}

package am

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/autodoc-ai/autodoc/errors"
)

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the autodoc configuration using Viper
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	return initViper()
}

// Get returns a configuration value by dot-notation key
func Get(key string) interface{} {
	return initViper().Get(key)
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	// Set up environment variable binding
	v.SetEnvPrefix("AUTODOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind secrets to environment variables
	BindSensitiveEnvVars(v)

	// Set defaults first
	SetDefaults(v)

	// Merge configs in precedence order: system -> user -> project
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// ConfigSources returns the config file paths in merge order (lowest
// precedence first). Missing files are included; callers can stat them.
func ConfigSources() []string {
	sources := []string{
		filepath.Join("/etc", "autodoc", "autodoc.toml"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		sources = append(sources, filepath.Join(home, ".autodoc", "autodoc.toml"))
	}
	if project := findProjectConfig(); project != "" {
		sources = append(sources, project)
	}
	return sources
}

// mergeConfigFiles merges existing config files into v, lowest precedence first
func mergeConfigFiles(v *viper.Viper) {
	for _, path := range ConfigSources() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		f := viper.New()
		f.SetConfigFile(path)
		f.SetConfigType("toml")
		if err := f.ReadInConfig(); err != nil {
			continue // unreadable file is skipped, not fatal
		}
		v.MergeConfigMap(f.AllSettings())
	}
}

// findProjectConfig searches for autodoc.toml by walking up the directory tree.
// Returns the path of the first config file found, or empty string.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, "autodoc.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

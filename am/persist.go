package am

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/autodoc-ai/autodoc/errors"
)

// UserConfigPath returns the path of the user-level config file (~/.autodoc/autodoc.toml)
func UserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve home directory")
	}
	return filepath.Join(home, ".autodoc", "autodoc.toml"), nil
}

// Save writes the configuration to the user-level config file as TOML.
// The containing directory is created if needed and the previous file is
// kept as a single .back backup.
func Save(cfg *Config) error {
	path, err := UserConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the configuration to a specific path as TOML
func SaveTo(cfg *Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "refusing to save invalid config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	if err := backupExisting(path); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config to TOML")
	}

	// Write through a temp file and rename for atomicity
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config temp file")
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrap(err, "failed to replace config file")
	}

	return nil
}

// backupExisting copies the current config file to <path>.back before a save
func backupExisting(path string) error {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}
	if err := os.WriteFile(path+".back", content, 0644); err != nil {
		return errors.Wrap(err, "failed to write config backup")
	}
	return nil
}

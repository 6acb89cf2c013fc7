package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-local config file consulted by Load.
const LocalPath = "configs/wordle.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.wordle/config.yaml -> ./configs/wordle.yaml -> embedded default
//
// Files are decoded over DefaultConfig, so omitted keys keep their defaults.
// A custom path must exist and parse; the other locations are skipped on any error.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if path := userConfigPath(); path != "" {
		if cfg, ok := tryFile(path); ok {
			return cfg, nil
		}
	}

	if cfg, ok := tryFile(LocalPath); ok {
		return cfg, nil
	}

	cfg, err := decode(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // embedded file is broken; use hardcoded values
	}
	return cfg, nil
}

func tryFile(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	cfg, err := decode(data)
	if err != nil {
		return Config{}, false
	}
	return cfg, true
}

func decode(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns ~/.wordle/config.yaml, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordle", "config.yaml")
}

// Package config loads client configuration for the lettings CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ClientConfig holds configuration for the lettings client.
type ClientConfig struct {
	Server         string `yaml:"server"`          // Backend base URL (default "http://localhost:8080")
	TimeoutSeconds int    `yaml:"timeout_seconds"` // Per-request timeout
	LogLevel       string `yaml:"log_level"`       // Log level: debug, info, warn, error
	LogFormat      string `yaml:"log_format"`      // Log format: text, json
}

// Default returns sensible defaults.
func Default() ClientConfig {
	return ClientConfig{
		Server:         "http://localhost:8080",
		TimeoutSeconds: 30,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// DefaultPath returns the config file location, ~/.lettings/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".lettings", "config.yaml"), nil
}

// Load returns the effective configuration: defaults, overlaid by the
// config file when it exists, overlaid by the LETTINGS_SERVER environment
// variable. A missing file is not an error.
func Load() (ClientConfig, error) {
	cfg := Default()

	path, err := DefaultPath()
	if err != nil {
		return cfg, err
	}
	if err := loadFile(path, &cfg); err != nil {
		return cfg, err
	}

	if s := os.Getenv("LETTINGS_SERVER"); s != "" {
		cfg.Server = s
	}
	return cfg, nil
}

func loadFile(path string, cfg *ClientConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

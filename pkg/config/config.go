// Package config loads application configuration from file and
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for regex-tester
type Config struct {
	// Engine selects the regex implementation: stdlib or coregex.
	Engine string `yaml:"engine"`

	// Pattern pre-fills the pattern input at startup.
	Pattern string `yaml:"pattern"`

	// SubjectHeight is the height of the test string area in rows.
	SubjectHeight int `yaml:"subject_height"`

	// LogFile enables debug logging to the given path when non-empty.
	// The UI owns the terminal, so logs never go to stdout or stderr.
	LogFile string `yaml:"log_file"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Engine:        "stdlib",
		SubjectHeight: 10,
	}
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	configPath := getConfigPath()
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	loadFromEnv(cfg)

	// Validate configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	// Check for explicit config path
	if path := os.Getenv("REGEX_TESTER_CONFIG"); path != "" {
		return path
	}

	// Check XDG config directory
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "regex-tester", "config.yaml")
	}

	// Fall back to home directory
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "regex-tester", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (env var or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) {
	if engine := os.Getenv("REGEX_TESTER_ENGINE"); engine != "" {
		cfg.Engine = engine
	}

	if logFile := os.Getenv("REGEX_TESTER_LOG_FILE"); logFile != "" {
		cfg.LogFile = logFile
	}
}

// validate validates the configuration
func validate(cfg *Config) error {
	if cfg.SubjectHeight <= 0 {
		return fmt.Errorf("subject_height must be positive")
	}

	return nil
}

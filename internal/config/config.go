package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ImportConfig holds the defaults applied to every import run unless
// overridden by command-line flags.
type ImportConfig struct {
	IncludeBools bool `yaml:"include_bools"`
	DryRun       bool `yaml:"dry_run,omitempty"`
}

// SinkConfig points at the settings store the importer writes to.
type SinkConfig struct {
	// DatabasePath overrides the default preferences database location.
	DatabasePath string `yaml:"database_path,omitempty"`
}

// LoggingConfig controls the file logger.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Config represents the main configuration
type Config struct {
	Import  ImportConfig  `yaml:"import"`
	Sink    SinkConfig    `yaml:"sink"`
	Logging LoggingConfig `yaml:"logging"`
}

// Default returns the configuration used when no config file exists yet.
func (c Config) Default() Config {
	return Config{
		Import: ImportConfig{
			IncludeBools: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads the configuration from path, creating the file with
// defaults when it is missing or empty.
func LoadConfig(path string) (Config, error) {
	defaultConfig := Config{}.Default()

	if path == "" {
		return defaultConfig, fmt.Errorf("config file path not set")
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := SaveConfig(path, defaultConfig); err != nil {
			return Config{}, fmt.Errorf("failed to save default config: %w", err)
		}
		return defaultConfig, nil
	}
	if err != nil {
		return defaultConfig, fmt.Errorf("failed to read config file: %w", err)
	}

	if len(data) == 0 {
		if err := SaveConfig(path, defaultConfig); err != nil {
			return Config{}, fmt.Errorf("failed to save default config to empty file: %w", err)
		}
		return defaultConfig, nil
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaultConfig, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(path string, cfg Config) error {
	if path == "" {
		return fmt.Errorf("config file path not set")
	}

	yamlData, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, yamlData, 0644)
}

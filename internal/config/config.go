package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no
// explicit config path is given.
const DefaultFileName = ".jsonv.yaml"

// Output formats accepted by the driver.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the complete configuration for the jsonv driver.
// It only shapes how results are presented; validation semantics are
// not configurable.
type Config struct {
	Format string `yaml:"format"`
	Debug  bool   `yaml:"debug"`
	Quiet  bool   `yaml:"quiet"`
}

// NewConfig returns a Config with default values
func NewConfig() *Config {
	return &Config{
		Format: FormatText,
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file '%s': %w", path, err)
	}
	return cfg, nil
}

// Validate checks that configuration values are usable
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q, expected %q or %q", c.Format, FormatText, FormatJSON)
	}
}

// LoadWithCLI loads config with CLI argument precedence. The config
// file (explicit path, or DefaultFileName if present) supplies base
// values and flags override them.
func LoadWithCLI(configPath, cliFormat string, cliDebug, cliQuiet bool) (*Config, error) {
	cfg := NewConfig()

	if configPath == "" {
		if _, err := os.Stat(DefaultFileName); err == nil {
			configPath = DefaultFileName
		}
	}
	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	// The format flag carries no default; an empty value means the
	// flag was not given and the config file value survives, while an
	// explicit "-f text" overrides a json config file.
	if cliFormat != "" {
		cfg.Format = cliFormat
	}
	if cliDebug {
		cfg.Debug = true
	}
	if cliQuiet {
		cfg.Quiet = true
	}

	return cfg, cfg.Validate()
}

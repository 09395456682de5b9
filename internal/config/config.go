// Package config loads settings for the jcomb command from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigNames are the file names searched for by FindConfigFile, in order.
var ConfigNames = []string{".jcomb.yml", ".jcomb.yaml"}

// Config represents the complete configuration for jcomb
type Config struct {
	// Strict reports an error if input remains after the parsed value.
	Strict bool `yaml:"strict"`

	// HuJSON accepts comments and trailing commas in the input, and removes
	// them along with all whitespace before parsing.
	HuJSON bool `yaml:"hujson"`

	// Indent, if non-empty, formats output over multiple lines using this
	// string for each level of indentation.
	Indent string `yaml:"indent"`

	// Debug enables diagnostic logging.
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config { return &Config{} }

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// FindConfigFile searches for a config file in dir and its parents, and
// returns the path of the first one found, or "".
func FindConfigFile(dir string) string {
	for {
		for _, name := range ConfigNames {
			configPath := filepath.Join(dir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(dir)
		if parentDir == dir {
			return "" // reached the root
		}
		dir = parentDir
	}
}

// Merge returns a copy of c updated with settings from the command line.
// Boolean flags can only enable a setting, since an unset flag cannot be
// distinguished from false. A non-empty indent replaces the configured one.
func (c *Config) Merge(strict, hujson, debug bool, indent string) *Config {
	merged := *c
	merged.Strict = merged.Strict || strict
	merged.HuJSON = merged.HuJSON || hujson
	merged.Debug = merged.Debug || debug
	if indent != "" {
		merged.Indent = indent
	}
	return &merged
}

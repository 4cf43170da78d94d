// Package config loads the optional monkey.yaml settings file used by the
// CLI and REPL. A missing file is not an error; every field has a default.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the settings file searched for in the working directory.
const DefaultFileName = "monkey.yaml"

// Config represents the top-level monkey.yaml configuration.
type Config struct {
	// Prompt is the REPL prompt string.
	Prompt string `yaml:"prompt,omitempty"`

	// Banner controls the greeting printed when the REPL starts.
	Banner bool `yaml:"banner,omitempty"`

	// PrintNull makes the REPL echo null results instead of staying silent.
	PrintNull bool `yaml:"print_null,omitempty"`
}

// Default returns the configuration used when no monkey.yaml is present.
func Default() *Config {
	return &Config{
		Prompt: ">> ",
		Banner: true,
	}
}

// Load reads and parses the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = Default().Prompt
	}
	return cfg, nil
}

// Find looks for monkey.yaml in dir and returns its path, or "" when absent.
func Find(dir string) string {
	path := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// Package config loads the REPL/CLI's presentation settings from YAML.
//
// Grounded on the pack's perbu-vcltest/pkg/config/loader.go: Load reads a
// file and unmarshals it with gopkg.in/yaml.v3 over the defaults. This is
// ambient CLI scaffolding (banner text, color toggle, prompt string), not
// a language feature, so it stays in scope despite spec.md scoping the
// REPL itself out of the evaluated core.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the REPL/CLI's ambient presentation settings.
type Config struct {
	Prompt  string `yaml:"prompt"`
	Banner  string `yaml:"banner"`
	Version string `yaml:"version"`
	Author  string `yaml:"author"`
	License string `yaml:"license"`
	Line    string `yaml:"line"`
	Color   bool   `yaml:"color"`
}

// Default returns the built-in presentation used when no config file is
// given.
func Default() *Config {
	return &Config{
		Prompt:  ">>",
		Banner:  "MIL — a minimal interpreted language",
		Version: "0.1.0",
		Author:  "dariusmocan",
		License: "MIT",
		Line:    "----------------------------------------",
		Color:   true,
	}
}

// Load reads and parses a YAML configuration file, filling any field the
// file omits from Default().
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

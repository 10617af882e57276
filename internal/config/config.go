// Package config loads and validates the markuptest.yaml configuration.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mfreites/markuptest/internal/domain"
)

// Config is the top-level configuration struct.
type Config struct {
	Input      InputConfig       `yaml:"input"`
	Generators []GeneratorConfig `yaml:"generators"`
	Validation ValidationConfig  `yaml:"validation"`
	IR         IRConfig          `yaml:"ir"`
	Watch      WatchConfig       `yaml:"watch"`
	Logging    LoggingConfig     `yaml:"logging"`
	DryRun     bool              `yaml:"dry_run"`
}

type InputConfig struct {
	Root      string   `yaml:"root"`
	Include   []string `yaml:"include"`
	Exclude   []string `yaml:"exclude"`
	Recursive *bool    `yaml:"recursive"` // pointer to distinguish unset from false
}

type GeneratorConfig struct {
	Name   string `yaml:"name"`
	Output string `yaml:"output"`
}

type ValidationConfig struct {
	// Strict treats validator warnings as fatal for the whole run. This is
	// run policy, not validator policy: the validator itself never lets
	// warnings flip validity.
	Strict bool `yaml:"strict"`
}

type IRConfig struct {
	// CachePath, when set, receives the merged IR as JSON after every
	// scan. The file is a regenerable cache, never a source of truth.
	CachePath string `yaml:"cache_path"`
}

type WatchConfig struct {
	DebounceMs int `yaml:"debounce_ms"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML configuration file, layered over DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("config", path, 0, "failed to read config file", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, domain.NewError("config", path, 0, "failed to parse config file", err)
	}
	return cfg, nil
}

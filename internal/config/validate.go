package config

import (
	"fmt"
	"strings"

	"github.com/mfreites/markuptest/internal/domain"
	"github.com/mfreites/markuptest/internal/generator"
)

// Validate checks the Config for required fields and valid values.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Input.Root == "" {
		errs = append(errs, "input.root must not be empty")
	}
	if len(cfg.Input.Include) == 0 {
		errs = append(errs, "input.include must not be empty")
	}

	if len(cfg.Generators) == 0 {
		errs = append(errs, "generators must not be empty")
	}
	seen := make(map[string]bool)
	for _, gc := range cfg.Generators {
		if _, err := generator.ByName(gc.Name); err != nil {
			errs = append(errs, fmt.Sprintf("generators: %v", err))
			continue
		}
		if gc.Output == "" {
			errs = append(errs, fmt.Sprintf("generators: %q has no output directory", gc.Name))
		}
		if seen[gc.Name] {
			errs = append(errs, fmt.Sprintf("generators: %q configured twice", gc.Name))
		}
		seen[gc.Name] = true
	}

	if cfg.Watch.DebounceMs < 0 {
		errs = append(errs, "watch.debounce_ms must not be negative")
	}

	if cfg.Logging.Level != "" {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[cfg.Logging.Level] {
			errs = append(errs, fmt.Sprintf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
		}
	}

	if len(errs) > 0 {
		return domain.NewError("config", "", 0, fmt.Sprintf("validation failed: %s", strings.Join(errs, "; ")), nil)
	}
	return nil
}

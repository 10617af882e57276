package config

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	recursive := true
	return &Config{
		Input: InputConfig{
			Root: "src",
			Include: []string{
				"**/*.html",
				"**/*.jsx",
				"**/*.tsx",
				"**/*.vue",
				"**/*.svelte",
				"**/*.md",
			},
			Exclude: []string{
				"node_modules/**",
				"dist/**",
				"build/**",
			},
			Recursive: &recursive,
		},
		Generators: []GeneratorConfig{
			{Name: "playwright", Output: "tests/generated/playwright"},
		},
		Validation: ValidationConfig{
			Strict: false,
		},
		IR: IRConfig{
			CachePath: "",
		},
		Watch: WatchConfig{
			DebounceMs: 300,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		DryRun: false,
	}
}

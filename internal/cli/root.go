package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mfreites/markuptest/internal/config"
	"github.com/mfreites/markuptest/internal/finder"
	"github.com/mfreites/markuptest/internal/pipeline"
	"github.com/mfreites/markuptest/internal/scanner"
)

var (
	cfgFile string
	verbose bool
	dryRun  bool
	log     *logrus.Logger
)

// rootCmd is the base command for markuptest.
var rootCmd = &cobra.Command{
	Use:   "markuptest",
	Short: "Generate test files from declarative markup directives",
	Long: `markuptest scans UI source files for data-test-* attributes and
@test-* comment macros, builds a framework-agnostic test IR, validates it,
and emits test files for Playwright, Cypress and Testing Library.

Everything is driven by a YAML configuration file (markuptest.yaml).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "markuptest.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "scan and validate but don't write files")

	log = logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.InfoLevel)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads and validates the configuration, applying global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if dryRun {
		cfg.DryRun = true
	}
	if !verbose {
		switch cfg.Logging.Level {
		case "debug":
			log.SetLevel(logrus.DebugLevel)
		case "warn":
			log.SetLevel(logrus.WarnLevel)
		case "error":
			log.SetLevel(logrus.ErrorLevel)
		}
	}
	return cfg, nil
}

// newPipeline wires the standard pipeline from configuration.
func newPipeline(cfg *config.Config) *pipeline.Pipeline {
	recursive := true
	if cfg.Input.Recursive != nil {
		recursive = *cfg.Input.Recursive
	}
	return pipeline.New(finder.NewFinder(recursive), scanner.NewDefaultRegistry(), log)
}

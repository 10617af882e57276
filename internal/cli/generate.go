package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Scan sources and generate test files",
	Long:  `Scans source files for test directives, validates the resulting IR, and writes one test file per (generator, case) pair.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		res, err := newPipeline(cfg).Run(cfg)
		if err != nil {
			return err
		}
		if res.Report.ErrorCount > 0 {
			return fmt.Errorf("%d case(s) blocked by %d validation error(s)",
				res.Blocked, res.Report.ErrorCount)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

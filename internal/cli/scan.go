package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfreites/markuptest/internal/domain"
)

var scanOutput string

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan sources and print the merged IR as JSON",
	Long:  `Scans source files, merges the fragments into one IR document, and prints it (or writes it to --output). The IR file is a cache: it can always be regenerated from source.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ir, scanned, failed, err := newPipeline(cfg).Scan(cfg)
		if err != nil {
			return err
		}
		log.Infof("Scanned %d file(s), %d failed", scanned, failed)

		if scanOutput != "" {
			return domain.SaveIR(ir, scanOutput)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ir)
	},
}

func init() {
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "write IR JSON to this file instead of stdout")
	rootCmd.AddCommand(scanCmd)
}

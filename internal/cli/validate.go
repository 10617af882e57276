package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfreites/markuptest/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Scan sources and print the validation report",
	Long:  `Scans source files, builds the IR, and prints every validation finding sorted by file and line, plus aggregate counts. Exits non-zero when errors are present (or warnings, in strict mode).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ir, _, _, err := newPipeline(cfg).Scan(cfg)
		if err != nil {
			return err
		}

		report := validator.ValidateIR(ir)
		printReport(report)

		if report.ErrorCount > 0 {
			return fmt.Errorf("validation failed with %d error(s)", report.ErrorCount)
		}
		if cfg.Validation.Strict && report.WarningCount > 0 {
			return fmt.Errorf("strict mode: %d warning(s) treated as fatal", report.WarningCount)
		}
		return nil
	},
}

func printReport(report validator.Report) {
	for _, issue := range report.Issues {
		loc := issue.FilePath
		if issue.Line > 0 {
			loc = fmt.Sprintf("%s:%d", loc, issue.Line)
			if issue.Column > 0 {
				loc = fmt.Sprintf("%s:%d", loc, issue.Column)
			}
		}
		if loc == "" {
			loc = "<document>"
		}
		fmt.Fprintf(os.Stdout, "%-7s %s %s [%s]\n", issue.Severity, loc, issue.Message, issue.RuleID)
	}
	fmt.Fprintf(os.Stdout, "%d error(s), %d warning(s), %d info\n",
		report.ErrorCount, report.WarningCount, report.InfoCount)
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

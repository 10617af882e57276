package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfreites/markuptest/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate tests whenever sources change",
	Long:  `Runs the generate pipeline once, then watches the input root. File changes are coalesced into a debounce window and each batch triggers one full re-scan-and-regenerate pass.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		p := newPipeline(cfg)
		run := func() {
			if _, err := p.Run(cfg); err != nil {
				log.Errorf("Pipeline run failed: %v", err)
			}
		}
		run()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
		w := watch.New(cfg.Input.Root, cfg.Input.Exclude, debounce, log, run)
		log.Infof("Watching %s (debounce %s)", cfg.Input.Root, debounce)
		if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/watcher"
	"github.com/spf13/cobra"
)

func newWatchCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Process every transcript dropped into the input folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(*configPath, true)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a.log.Info(ctx, "========================================")
			a.log.Info(ctx, "Meeting Scribe")
			a.log.Info(ctx, "========================================")
			a.log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
			a.log.Info(ctx, "Max Concurrent Processing: %d", a.cfg.Performance.MaxConcurrent)

			if err := ensureDirectories(a.cfg); err != nil {
				return err
			}

			w, err := watcher.New(a.cfg.Paths.Input, a.pipeline.Process, a.log, a.cfg.Performance.MaxConcurrent)
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer w.Stop()

			a.log.Info(ctx, "Monitoring: %s", a.cfg.Paths.Input)
			a.log.Info(ctx, "Output: %s", a.cfg.Paths.Output)
			a.log.Info(ctx, "Cleaner: %s, sink: %s", a.cfg.Cleaner.Provider, a.cfg.Sink.Type)
			a.log.Info(ctx, "Press Ctrl+C to stop")

			err = w.Start(ctx)
			a.log.Info(context.Background(), "Meeting Scribe stopped")
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

func ensureDirectories(cfg *config.Config) error {
	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/nguyentantai21042004/meeting-scribe/internal/cleaner"
	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/exporter"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/nguyentantai21042004/meeting-scribe/internal/pipeline"
	"github.com/nguyentantai21042004/meeting-scribe/internal/sink"
	"github.com/nguyentantai21042004/meeting-scribe/pkg/executor"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "scribe",
		Short:         "Chunk, clean and reassemble meeting transcripts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to the config file")

	root.AddCommand(
		newChunkCommand(&configPath),
		newReassembleCommand(&configPath),
		newRunCommand(&configPath),
		newWatchCommand(&configPath),
	)
	return root
}

// app holds everything a subcommand needs, built from one config file.
type app struct {
	cfg      *config.Config
	log      logger.Logger
	pipeline pipeline.Pipeline
	exporter exporter.Exporter
	close    func() error
}

// newApp wires the pipeline. Commands that never call the cleaner pass
// withCleaner=false so a missing API key does not stop them.
func newApp(configPath string, withCleaner bool) (*app, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	s, closeSink, err := sink.New(cfg.Sink)
	if err != nil {
		return nil, fmt.Errorf("init sink: %w", err)
	}

	c := cleaner.NewIdentity()
	if withCleaner {
		c, err = cleaner.New(cfg.Cleaner, executor.New(), log)
		if err != nil {
			closeSink()
			return nil, fmt.Errorf("init cleaner: %w", err)
		}
	}

	e := exporter.New(cfg.Paths.Output, cfg.Output.Docx, log)
	p, err := pipeline.New(cfg, s, c, e, log)
	if err != nil {
		closeSink()
		return nil, fmt.Errorf("init pipeline: %w", err)
	}

	return &app{
		cfg:      cfg,
		log:      log,
		pipeline: p,
		exporter: e,
		close:    closeSink,
	}, nil
}

package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/meeting-scribe/internal/transcript"
)

// Process orchestrates a full run for one transcript file
func (p *implPipeline) Process(ctx context.Context, path string) error {
	startTime := time.Now()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting transcript processing: %s", path)
	p.logger.Info(ctx, "========================================")

	// Step 1: Read the raw transcript
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read transcript %s: %w: %v", path, transcript.ErrInput, err)
	}

	// Step 2: Chunk, clean and reassemble
	res, err := p.Run(ctx, name, string(data))
	if err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}

	// Step 3: Export the cleaned transcript
	outputs, err := p.exporter.Export(ctx, name, &transcript.Document{Text: res.Text, TotalWords: res.WordsOut})
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	// Step 4: Move the raw transcript to the archived folder
	if err := p.moveToArchived(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to move transcript to archived folder: %v", err)
	}

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Words: %d -> %d across %d chunks", res.WordsIn, res.WordsOut, len(res.Chunks))
	for _, out := range outputs {
		p.logger.Info(ctx, "Output: %s", out)
	}
	if len(res.Warnings) > 0 {
		p.logger.Warn(ctx, "Finished with %d warnings", len(res.Warnings))
	}
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return nil
}

// moveToArchived moves the processed transcript out of the inbox
func (p *implPipeline) moveToArchived(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}
	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))

	p.logger.Info(ctx, "Moving to archived folder: %s -> %s", path, dest)

	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}

package exporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/meeting-scribe/internal/transcript"
)

// Export writes the cleaned text verbatim to <name>.md, plus a styled .docx if enabled.
func (e *implExporter) Export(ctx context.Context, name string, doc *transcript.Document) ([]string, error) {
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	mdPath := filepath.Join(e.outputDir, name+".md")
	if err := WriteText(mdPath, doc.Text); err != nil {
		return nil, err
	}
	e.logger.Info(ctx, "Cleaned transcript written: %s", mdPath)
	paths := []string{mdPath}

	if e.docx {
		docxPath := filepath.Join(e.outputDir, name+".docx")
		if err := transcriptToDocx(name, doc.Text, docxPath); err != nil {
			return paths, fmt.Errorf("write docx: %w", err)
		}
		e.logger.Info(ctx, "Docx written: %s", docxPath)
		paths = append(paths, docxPath)
	}

	return paths, nil
}

// WriteText saves text to path, creating parent directories.
func WriteText(path, text string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("save cleaned transcript: %w", err)
	}
	return nil
}

package exporter

import (
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
)

type implExporter struct {
	outputDir string
	docx      bool
	logger    logger.Logger
}

// New creates an Exporter writing <name>.md, and <name>.docx when docx is set, into outputDir.
func New(outputDir string, docx bool, log logger.Logger) Exporter {
	return &implExporter{
		outputDir: outputDir,
		docx:      docx,
		logger:    log,
	}
}

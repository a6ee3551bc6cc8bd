package exporter

import (
	"context"

	"github.com/nguyentantai21042004/meeting-scribe/internal/transcript"
)

// Exporter writes a reassembled transcript and returns the files it produced.
type Exporter interface {
	Export(ctx context.Context, name string, doc *transcript.Document) ([]string, error)
}

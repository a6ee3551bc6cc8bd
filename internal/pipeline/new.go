package pipeline

import (
	"github.com/google/uuid"
	"github.com/nguyentantai21042004/meeting-scribe/internal/cleaner"
	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/exporter"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/nguyentantai21042004/meeting-scribe/internal/sink"
	"github.com/nguyentantai21042004/meeting-scribe/internal/transcript"
)

type implPipeline struct {
	cfg       *config.Config
	sink      sink.Sink
	cleaner   cleaner.Cleaner
	sanitizer *transcript.Sanitizer
	exporter  exporter.Exporter
	logger    logger.Logger
	newRunID  func() string
}

// New creates a Pipeline. cfg must already be validated.
func New(cfg *config.Config, s sink.Sink, c cleaner.Cleaner, e exporter.Exporter, log logger.Logger) (Pipeline, error) {
	san, err := transcript.NewSanitizer(cfg.Sanitizer.ExtraPatterns...)
	if err != nil {
		return nil, err
	}
	return &implPipeline{
		cfg:       cfg,
		sink:      s,
		cleaner:   c,
		sanitizer: san,
		exporter:  e,
		logger:    log,
		newRunID:  uuid.NewString,
	}, nil
}

func (p *implPipeline) packOptions() transcript.PackOptions {
	return transcript.PackOptions{
		TargetWords: p.cfg.Chunking.TargetWords,
		MinWords:    *p.cfg.Chunking.MinWords,
		Overflow:    p.cfg.Chunking.Overflow,
	}
}

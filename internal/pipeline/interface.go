package pipeline

import "context"

// Pipeline splits a transcript into chunks, has every chunk cleaned and
// joins the cleaned chunks back into one document.
type Pipeline interface {
	// Run executes the whole cycle on an in-memory document.
	Run(ctx context.Context, name, document string) (*Result, error)
	// Stage segments, packs and stages the chunks of document under runID
	// without cleaning them.
	Stage(ctx context.Context, runID, document string) (*Result, error)
	// Reassemble joins externally cleaned outputs of chunks 1..total and
	// clears the run from the sink.
	Reassemble(ctx context.Context, runID string, total int, outputs map[int]string) (*Result, error)
	// Process runs the file at path and exports the cleaned transcript.
	Process(ctx context.Context, path string) error
}

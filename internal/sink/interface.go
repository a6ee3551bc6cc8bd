package sink

import (
	"context"
	"errors"
)

// ErrNotAvailable is returned when no cleaned output has been stored for a chunk.
var ErrNotAvailable = errors.New("cleaned output not available")

// Handle addresses a staged chunk: a file path, a redis key, or a memory key.
type Handle string

// Sink stages chunks of one run and holds their cleaned counterparts until reassembly.
// Implementations must be safe for concurrent use.
type Sink interface {
	PutChunk(ctx context.Context, runID string, index int, text string) (Handle, error)
	Chunk(ctx context.Context, runID string, index int) (string, error)
	PutCleaned(ctx context.Context, runID string, index int, raw string) error
	Cleaned(ctx context.Context, runID string, index int) (string, error)
	// Cleanup drops everything staged for runID and reports how many items were removed.
	Cleanup(ctx context.Context, runID string) (int, error)
}

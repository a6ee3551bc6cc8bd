package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/nguyentantai21042004/meeting-scribe/internal/transcript"
	"golang.org/x/sync/errgroup"
)

// dispatch hands every chunk to the cleaner concurrently and waits for all of
// them. Concurrency is bounded by performance.max_concurrent when set. A
// chunk that fails stays outstanding; the others still finish. If ctx ends
// while chunks are still without output, they are reported and nothing is
// reassembled.
func (p *implPipeline) dispatch(ctx context.Context, r *run, chunks []transcript.Chunk) error {
	r.move(ctx, StateDispatched)
	p.logger.Info(ctx, "Dispatching %d chunks to %s", len(chunks), p.cleaner.Name())

	var sem *semaphore
	if n := p.cfg.Performance.MaxConcurrent; n > 0 {
		sem = newSemaphore(n)
	}

	var (
		g        errgroup.Group
		mu       sync.Mutex
		failures = make(map[int]error)
	)

	for _, c := range chunks {
		if sem != nil {
			if err := sem.acquire(ctx); err != nil {
				break
			}
		} else if ctx.Err() != nil {
			break
		}
		r.setChunk(ctx, c.Index, StateDispatched)

		g.Go(func() error {
			if sem != nil {
				defer sem.release()
			}
			err := p.cleanChunk(ctx, r, c)
			if err != nil {
				mu.Lock()
				failures[c.Index] = err
				mu.Unlock()
				return err
			}
			r.setChunk(ctx, c.Index, StateCleanedReceived)
			return nil
		})
	}

	// Barrier: every dispatched chunk has returned past this point.
	_ = g.Wait()

	// A cancel that lands after the last chunk came back loses nothing.
	if err := ctx.Err(); err != nil {
		if outstanding := r.pending(StateCleanedReceived); len(outstanding) > 0 {
			r.move(ctx, StateFailed)
			p.logger.Error(ctx, "Run %s aborted, outstanding chunks: %v", r.id, outstanding)
			return &OutstandingError{Indices: outstanding, Err: err}
		}
	}

	if len(failures) > 0 {
		indices := make([]int, 0, len(failures))
		for idx := range failures {
			indices = append(indices, idx)
		}
		sort.Ints(indices)

		causes := make([]error, 0, len(indices))
		for _, idx := range indices {
			p.logger.Error(ctx, "Chunk %d failed: %v", idx, failures[idx])
			causes = append(causes, fmt.Errorf("chunk %d: %w", idx, failures[idx]))
		}
		return r.fail(ctx, "clean", indices[0], &transcript.ChunkMissingError{
			Indices: indices,
			Err:     errors.Join(causes...),
		})
	}

	r.move(ctx, StateCleanedReceived)
	return nil
}

func (p *implPipeline) cleanChunk(ctx context.Context, r *run, c transcript.Chunk) error {
	raw, err := p.cleaner.Clean(ctx, c.Text())
	if err != nil {
		return err
	}
	if err := p.sink.PutCleaned(ctx, r.id, c.Index, raw); err != nil {
		return err
	}
	p.logger.Debug(ctx, "Chunk %d cleaned (%d words raw)", c.Index, transcript.CountWords(raw))
	return nil
}

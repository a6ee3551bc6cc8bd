package pipeline

import (
	"context"
	"errors"
	"strings"

	"github.com/nguyentantai21042004/meeting-scribe/internal/sink"
	"github.com/nguyentantai21042004/meeting-scribe/internal/transcript"
)

// Run goes Created -> Segmented -> Packed -> per-chunk cleaning ->
// Reassembled -> Done. Any fatal error moves the run to Failed; the partial
// Result is still returned for diagnostics.
func (p *implPipeline) Run(ctx context.Context, name, document string) (*Result, error) {
	r := newRun(p.newRunID(), name, len(document), p.logger)
	p.logger.Info(ctx, "=== Run %s: %s ===", r.id, name)

	chunks, err := p.prepare(ctx, r, document)
	if err != nil {
		return r.result(), err
	}

	if err := p.dispatch(ctx, r, chunks); err != nil {
		return r.result(), err
	}

	outputs, err := p.collect(ctx, r, len(chunks))
	if err != nil {
		return r.result(), err
	}

	if err := p.reassemble(ctx, r, len(chunks), outputs); err != nil {
		return r.result(), err
	}
	return r.result(), nil
}

// Stage runs the chunking half of the cycle and leaves the chunks in the sink.
func (p *implPipeline) Stage(ctx context.Context, runID, document string) (*Result, error) {
	r := newRun(runID, runID, len(document), p.logger)
	if _, err := p.prepare(ctx, r, document); err != nil {
		return r.result(), err
	}
	return r.result(), nil
}

// Reassemble joins cleaned outputs produced outside the pipeline. The chunk
// count is the larger of total and the number of chunks staged for runID, so
// staged chunks without an output are reported missing and stay staged.
func (p *implPipeline) Reassemble(ctx context.Context, runID string, total int, outputs map[int]string) (*Result, error) {
	r := newRun(runID, runID, 0, p.logger)
	r.state = StateCleanedReceived

	staged, err := p.stagedCount(ctx, runID)
	if err != nil {
		return r.result(), r.fail(ctx, "collect", staged+1, err)
	}
	if staged > total {
		p.logger.Warn(ctx, "Run %s has %d staged chunks but %d outputs were supplied", runID, staged, total)
		total = staged
	}

	for i := 1; i <= total; i++ {
		r.addChunk(transcript.Chunk{Index: i}, "", StateCleanedReceived)
	}

	if err := p.reassemble(ctx, r, total, outputs); err != nil {
		return r.result(), err
	}
	return r.result(), nil
}

// stagedCount counts the chunks staged for runID, which are numbered from 1
// without gaps.
func (p *implPipeline) stagedCount(ctx context.Context, runID string) (int, error) {
	n := 0
	for {
		_, err := p.sink.Chunk(ctx, runID, n+1)
		if errors.Is(err, sink.ErrNotAvailable) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
	}
}

// prepare segments and packs document and stages every chunk in the sink.
func (p *implPipeline) prepare(ctx context.Context, r *run, document string) ([]transcript.Chunk, error) {
	if strings.TrimSpace(document) == "" {
		return nil, r.fail(ctx, "read", 0, transcript.ErrInput)
	}
	r.res.WordsIn = transcript.CountWords(document)
	p.logger.Info(ctx, "Transcript has %d words", r.res.WordsIn)

	segments := transcript.Split(document)
	if len(segments) == 0 {
		return nil, r.fail(ctx, "segment", 0, transcript.ErrSegmentationDegenerate)
	}
	r.res.Segments = len(segments)
	r.move(ctx, StateSegmented)
	p.logger.Info(ctx, "Found %d logical segments", len(segments))

	chunks := transcript.Pack(segments, p.packOptions())
	if len(chunks) == 0 {
		return nil, r.fail(ctx, "pack", 0, transcript.ErrNoChunks)
	}
	p.logger.Info(ctx, "Created %d chunks", len(chunks))

	for _, c := range chunks {
		h, err := p.sink.PutChunk(ctx, r.id, c.Index, c.Text())
		if err != nil {
			return nil, r.fail(ctx, "stage", c.Index, err)
		}
		r.addChunk(c, h, StatePacked)
		p.logger.Info(ctx, "Chunk %d: %d words", c.Index, c.Words)
	}
	r.move(ctx, StatePacked)
	return chunks, nil
}

// collect reads every cleaned output back from the sink. Outputs the sink
// does not have are left out so reassembly reports them as missing.
func (p *implPipeline) collect(ctx context.Context, r *run, total int) (map[int]string, error) {
	outputs := make(map[int]string, total)
	for i := 1; i <= total; i++ {
		raw, err := p.sink.Cleaned(ctx, r.id, i)
		if errors.Is(err, sink.ErrNotAvailable) {
			continue
		}
		if err != nil {
			return nil, r.fail(ctx, "collect", i, err)
		}
		outputs[i] = raw
	}
	return outputs, nil
}

// reassemble sanitizes and joins outputs, records diagnostics and clears the sink.
func (p *implPipeline) reassemble(ctx context.Context, r *run, total int, outputs map[int]string) error {
	p.logger.Info(ctx, "=== Reassembling %d chunks ===", total)

	doc, err := transcript.Reassemble(total, outputs, p.sanitizer)
	if err != nil {
		return r.fail(ctx, "reassemble", firstMissing(err), err)
	}

	for i := 1; i <= total; i++ {
		r.setChunk(ctx, i, StateSanitized)
	}
	r.move(ctx, StateSanitized)

	for _, w := range doc.Warnings {
		r.warn(ctx, w)
	}
	r.mu.Lock()
	for _, st := range doc.Chunks {
		if c, ok := r.chunks[st.Index]; ok {
			c.WordsOut = st.Words
		}
	}
	r.res.Text = doc.Text
	r.res.WordsOut = doc.TotalWords
	r.mu.Unlock()
	for _, st := range doc.Chunks {
		p.logger.Info(ctx, "Chunk %d: %d words", st.Index, st.Words)
	}
	r.move(ctx, StateReassembled)
	p.logger.Info(ctx, "Reassembled %d chunks, total cleaned transcript: %d words", len(doc.Chunks), doc.TotalWords)

	removed, err := p.sink.Cleanup(ctx, r.id)
	if err != nil {
		r.warn(ctx, transcript.Warning{Kind: transcript.WarnCleanup, Message: "failed to clean up chunk files: " + err.Error()})
	} else {
		p.logger.Info(ctx, "Cleaned up %d chunk files", removed)
	}

	r.move(ctx, StateDone)
	return nil
}

func firstMissing(err error) int {
	var missing *transcript.ChunkMissingError
	if errors.As(err, &missing) && len(missing.Indices) > 0 {
		return missing.Indices[0]
	}
	return 0
}

package pipeline

import (
	"context"
	"sort"
	"sync"

	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/nguyentantai21042004/meeting-scribe/internal/sink"
	"github.com/nguyentantai21042004/meeting-scribe/internal/transcript"
)

// run tracks the state of one pipeline run and of each of its chunks.
type run struct {
	id     string
	name   string
	docLen int
	logger logger.Logger

	mu     sync.Mutex
	state  State
	res    Result
	chunks map[int]*ChunkReport
}

func newRun(id, name string, docLen int, log logger.Logger) *run {
	return &run{
		id:     id,
		name:   name,
		docLen: docLen,
		logger: log,
		state:  StateCreated,
		res:    Result{RunID: id, Name: name, State: StateCreated},
		chunks: make(map[int]*ChunkReport),
	}
}

func (r *run) move(ctx context.Context, to State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !canMove(r.state, to) {
		r.logger.Warn(ctx, "Run %s: unexpected transition %s -> %s", r.id, r.state, to)
	}
	r.logger.Debug(ctx, "Run %s: %s -> %s", r.id, r.state, to)
	r.state = to
}

// fail moves the run to StateFailed and wraps err with the run context.
func (r *run) fail(ctx context.Context, stage string, chunk int, err error) error {
	r.move(ctx, StateFailed)
	return &transcript.StageError{
		Stage:       stage,
		DocumentLen: r.docLen,
		ChunkIndex:  chunk,
		Err:         err,
	}
}

func (r *run) addChunk(c transcript.Chunk, h sink.Handle, state State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chunks[c.Index] = &ChunkReport{
		Index:   c.Index,
		Handle:  h,
		WordsIn: c.Words,
		State:   state,
	}
}

func (r *run) setChunk(ctx context.Context, index int, to State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.chunks[index]
	if !ok {
		return
	}
	if !canMove(c.State, to) {
		r.logger.Warn(ctx, "Run %s chunk %d: unexpected transition %s -> %s", r.id, index, c.State, to)
	}
	c.State = to
}

// pending returns, in order, the chunks that have not reached want.
func (r *run) pending(want State) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []int
	for idx, c := range r.chunks {
		if c.State != want {
			out = append(out, idx)
		}
	}
	sort.Ints(out)
	return out
}

func (r *run) warn(ctx context.Context, w transcript.Warning) {
	r.logger.Warn(ctx, "Run %s: %s", r.id, w)
	r.mu.Lock()
	r.res.Warnings = append(r.res.Warnings, w)
	r.mu.Unlock()
}

// result snapshots the run into a Result.
func (r *run) result() *Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := r.res
	res.State = r.state
	res.Warnings = append([]transcript.Warning(nil), r.res.Warnings...)
	res.Chunks = make([]ChunkReport, 0, len(r.chunks))
	for _, c := range r.chunks {
		res.Chunks = append(res.Chunks, *c)
	}
	sort.Slice(res.Chunks, func(i, j int) bool { return res.Chunks[i].Index < res.Chunks[j].Index })
	return &res
}

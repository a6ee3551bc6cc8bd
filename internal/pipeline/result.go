package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/meeting-scribe/internal/sink"
	"github.com/nguyentantai21042004/meeting-scribe/internal/transcript"
)

// ChunkReport is the per-chunk diagnostics of a run.
type ChunkReport struct {
	Index    int
	Handle   sink.Handle
	WordsIn  int
	WordsOut int
	State    State
}

// Result carries the final document and the diagnostics of one run.
type Result struct {
	RunID    string
	Name     string
	State    State
	Segments int
	Chunks   []ChunkReport
	WordsIn  int
	WordsOut int
	Text     string
	Warnings []transcript.Warning
}

// OutstandingError is returned when the run was cancelled before every chunk
// came back from the cleaner. Nothing is reassembled in that case.
type OutstandingError struct {
	Indices []int
	Err     error
}

func (e *OutstandingError) Error() string {
	parts := make([]string, len(e.Indices))
	for i, n := range e.Indices {
		parts[i] = strconv.Itoa(n)
	}
	return fmt.Sprintf("run aborted with chunks %s outstanding: %v", strings.Join(parts, ", "), e.Err)
}

func (e *OutstandingError) Unwrap() error { return e.Err }

package transcript

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInput: raw document missing, unreadable or empty.
	ErrInput = errors.New("input document missing or empty")
	// ErrSegmentationDegenerate: non-empty input produced zero segments.
	ErrSegmentationDegenerate = errors.New("no segments produced from non-empty input")
	// ErrNoChunks: the packer emitted nothing.
	ErrNoChunks = errors.New("no chunks produced")
	// ErrReassemblyEmpty: every chunk sanitized to empty text.
	ErrReassemblyEmpty = errors.New("no cleaned content to reassemble")
)

// ChunkMissingError names the chunk indices whose cleaned output was never supplied.
type ChunkMissingError struct {
	Indices []int
	Err     error // optional cause, e.g. joined clean failures
}

func (e *ChunkMissingError) Error() string {
	msg := "missing output for chunk " + joinIndices(e.Indices)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ChunkMissingError) Unwrap() error { return e.Err }

// StageError attaches run context to a fatal error so a caller can retry narrowly.
type StageError struct {
	Stage       string
	DocumentLen int
	ChunkIndex  int // 0 when not chunk specific
	Err         error
}

func (e *StageError) Error() string {
	if e.ChunkIndex > 0 {
		return fmt.Sprintf("%s (document %d bytes, chunk %d): %v", e.Stage, e.DocumentLen, e.ChunkIndex, e.Err)
	}
	return fmt.Sprintf("%s (document %d bytes): %v", e.Stage, e.DocumentLen, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// WarningKind classifies a non-fatal condition.
type WarningKind string

const (
	// WarnSanitizedEmpty: non-empty raw output sanitized to nothing.
	WarnSanitizedEmpty WarningKind = "sanitization_ambiguity"
	// WarnCleanup: staged chunk files could not be removed.
	WarnCleanup WarningKind = "cleanup"
)

// Warning is a non-fatal condition surfaced alongside a successful result.
type Warning struct {
	Kind       WarningKind
	ChunkIndex int
	Message    string
}

func (w Warning) String() string {
	if w.ChunkIndex > 0 {
		return fmt.Sprintf("chunk %d: %s", w.ChunkIndex, w.Message)
	}
	return w.Message
}

func joinIndices(idx []int) string {
	parts := make([]string, len(idx))
	for i, n := range idx {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

package transcript

import "strings"

// Separator joins segments inside a chunk and sanitized chunks in the final document.
const Separator = "\n\n"

// Segment is one logical unit of the document: a paragraph or a single speaker turn.
type Segment struct {
	Text  string
	Words int
}

// Chunk is an ordered group of segments submitted to the cleaning agent as one unit.
type Chunk struct {
	Index    int // 1-based, contiguous
	Segments []Segment
	Words    int
}

// Text returns the chunk body as it is handed to the cleaning agent.
func (c Chunk) Text() string {
	parts := make([]string, len(c.Segments))
	for i, s := range c.Segments {
		parts[i] = s.Text
	}
	return strings.Join(parts, Separator)
}

// PackOptions are the packer thresholds, in words.
type PackOptions struct {
	TargetWords int
	MinWords    int
	Overflow    float64
}

// DefaultPackOptions returns the standard 500/300/1.5 thresholds.
func DefaultPackOptions() PackOptions {
	return PackOptions{
		TargetWords: 500,
		MinWords:    300,
		Overflow:    1.5,
	}
}

// ChunkStat reports the word counts of one reassembled chunk.
type ChunkStat struct {
	Index int
	Words int
}

// Document is the reassembled result plus its diagnostics.
type Document struct {
	Text       string
	Chunks     []ChunkStat
	TotalWords int
	Warnings   []Warning
}

// CountWords counts whitespace-separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

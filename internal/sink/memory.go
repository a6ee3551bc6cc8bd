package sink

import (
	"context"
	"fmt"
	"sync"
)

type memKey struct {
	runID   string
	index   int
	cleaned bool
}

type memorySink struct {
	mu    sync.Mutex
	items map[memKey]string
}

// NewMemory returns a Sink that keeps everything in process memory.
func NewMemory() Sink {
	return &memorySink{items: make(map[memKey]string)}
}

func (s *memorySink) PutChunk(ctx context.Context, runID string, index int, text string) (Handle, error) {
	s.put(memKey{runID, index, false}, text)
	return Handle(fmt.Sprintf("mem://%s/%d", runID, index)), nil
}

func (s *memorySink) Chunk(ctx context.Context, runID string, index int) (string, error) {
	return s.get(memKey{runID, index, false})
}

func (s *memorySink) PutCleaned(ctx context.Context, runID string, index int, raw string) error {
	s.put(memKey{runID, index, true}, raw)
	return nil
}

func (s *memorySink) Cleaned(ctx context.Context, runID string, index int) (string, error) {
	return s.get(memKey{runID, index, true})
}

func (s *memorySink) Cleanup(ctx context.Context, runID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for k := range s.items {
		if k.runID == runID {
			delete(s.items, k)
			removed++
		}
	}
	return removed, nil
}

func (s *memorySink) put(k memKey, v string) {
	s.mu.Lock()
	s.items[k] = v
	s.mu.Unlock()
}

func (s *memorySink) get(k memKey) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[k]
	if !ok {
		return "", ErrNotAvailable
	}
	return v, nil
}

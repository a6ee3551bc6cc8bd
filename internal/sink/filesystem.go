package sink

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

type fileSink struct {
	dir    string
	prefix string
}

// NewFilesystem stages chunks as <dir>/<prefix>-<run>-<NNN>.md and their
// cleaned outputs as <prefix>-<run>-<NNN>.cleaned.md.
func NewFilesystem(dir, prefix string) (Sink, error) {
	if prefix == "" {
		prefix = "meeting-chunk"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create sink dir: %w", err)
	}
	return &fileSink{dir: dir, prefix: prefix}, nil
}

// chunkPath returns where chunk index of runID is staged.
func (s *fileSink) chunkPath(runID string, index int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s-%s-%03d.md", s.prefix, runID, index))
}

func (s *fileSink) cleanedPath(runID string, index int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s-%s-%03d.cleaned.md", s.prefix, runID, index))
}

func (s *fileSink) PutChunk(ctx context.Context, runID string, index int, text string) (Handle, error) {
	path := s.chunkPath(runID, index)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("save chunk %d: %w", index, err)
	}
	return Handle(path), nil
}

func (s *fileSink) Chunk(ctx context.Context, runID string, index int) (string, error) {
	return readOrUnavailable(s.chunkPath(runID, index))
}

func (s *fileSink) PutCleaned(ctx context.Context, runID string, index int, raw string) error {
	if err := os.WriteFile(s.cleanedPath(runID, index), []byte(raw), 0644); err != nil {
		return fmt.Errorf("save cleaned chunk %d: %w", index, err)
	}
	return nil
}

func (s *fileSink) Cleaned(ctx context.Context, runID string, index int) (string, error) {
	return readOrUnavailable(s.cleanedPath(runID, index))
}

func (s *fileSink) Cleanup(ctx context.Context, runID string) (int, error) {
	files, err := filepath.Glob(filepath.Join(s.dir, fmt.Sprintf("%s-%s-*.md", s.prefix, runID)))
	if err != nil {
		return 0, fmt.Errorf("glob chunk files: %w", err)
	}
	own := regexp.MustCompile(`^` + regexp.QuoteMeta(s.prefix+"-"+runID+"-") + `\d{3,}(\.cleaned)?\.md$`)

	removed := 0
	var errs []error
	for _, f := range files {
		if !own.MatchString(filepath.Base(f)) {
			continue
		}
		if err := os.Remove(f); err != nil {
			errs = append(errs, err)
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}

func readOrUnavailable(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotAvailable
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

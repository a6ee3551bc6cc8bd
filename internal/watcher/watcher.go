package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
)

var transcriptExts = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
}

type implWatcher struct {
	inboxDir string
	handler  Handler
	logger   logger.Logger
	fw       *fsnotify.Watcher
	limit    int
	slots    chan struct{}
	settle   time.Duration
	wg       sync.WaitGroup

	mu   sync.Mutex
	seen map[string]struct{}
}

// Start handles transcripts already waiting in the inbox, then every new one
// until ctx ends. In-flight transcripts are finished before it returns.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Transcript watcher started (max concurrent: %d). Monitoring: %s", w.limit, w.inboxDir)

	if err := w.backlog(ctx); err != nil {
		w.logger.Warn(ctx, "Failed to scan inbox: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing transcripts to finish...")
			w.wg.Wait()
			w.logger.Info(ctx, "Transcript watcher stopped")
			return ctx.Err()

		case event, ok := <-w.fw.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !isTranscriptFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-transcript file: %s", event.Name)
				continue
			}
			w.logger.Info(ctx, "New transcript detected: %s", event.Name)

			// Give the writer a moment to finish the file.
			select {
			case <-time.After(w.settle):
			case <-ctx.Done():
				continue
			}
			w.dispatch(ctx, event.Name)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

func (w *implWatcher) Stop() error {
	return w.fw.Close()
}

func (w *implWatcher) backlog(ctx context.Context) error {
	entries, err := os.ReadDir(w.inboxDir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !isTranscriptFile(e.Name()) {
			continue
		}
		w.dispatch(ctx, filepath.Join(w.inboxDir, e.Name()))
	}
	return nil
}

// dispatch runs the handler for path once a slot is free. A path is handled
// once per watcher unless its handler fails.
func (w *implWatcher) dispatch(ctx context.Context, path string) {
	w.mu.Lock()
	if _, dup := w.seen[path]; dup {
		w.mu.Unlock()
		return
	}
	w.seen[path] = struct{}{}
	w.mu.Unlock()

	select {
	case w.slots <- struct{}{}:
	case <-ctx.Done():
		return
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() { <-w.slots }()

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
			w.forget(path)
		}
	}()
}

// forget lets a failed path be picked up again when it reappears.
func (w *implWatcher) forget(path string) {
	w.mu.Lock()
	delete(w.seen, path)
	w.mu.Unlock()
}

func isTranscriptFile(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return false
	}
	return transcriptExts[strings.ToLower(filepath.Ext(name))]
}

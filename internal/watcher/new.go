package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
)

const defaultSettle = 500 * time.Millisecond

// New watches inboxDir. At most maxConcurrent transcripts are handled at
// once; values below 1 mean one at a time.
func New(inboxDir string, handler Handler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(inboxDir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", inboxDir, err)
	}

	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	return &implWatcher{
		inboxDir: inboxDir,
		handler:  handler,
		logger:   log,
		fw:       fw,
		limit:    maxConcurrent,
		slots:    make(chan struct{}, maxConcurrent),
		settle:   defaultSettle,
		seen:     make(map[string]struct{}),
	}, nil
}

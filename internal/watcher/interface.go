package watcher

import "context"

// Watcher feeds transcripts dropped into the inbox to a handler.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handler processes one transcript file.
type Handler func(ctx context.Context, path string) error

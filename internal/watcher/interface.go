package watcher

import "context"

// Watcher monitors the inbox directory for dropped PDF notes.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler handles a newly dropped file.
type EventHandler func(ctx context.Context, filePath string) error

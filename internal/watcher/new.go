package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/saarthak20/CollegeAi/internal/logger"
)

// New creates a Watcher over inboxDir with bounded concurrency.
func New(inboxDir string, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(inboxDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		inboxDir: inboxDir,
		handler:  handler,
		logger:   log,
		watcher:  fsw,
		sem:      newSemaphore(maxConcurrent),
	}, nil
}

package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/saarthak20/CollegeAi/internal/logger"
)

type implWatcher struct {
	inboxDir string
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	sem      *semaphore
	wg       sync.WaitGroup
}

// Start monitors the inbox for new PDF files until the context is
// cancelled. Each dropped PDF is handed to the handler on its own
// goroutine, bounded by the semaphore.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Inbox watcher started. Monitoring: %s", w.inboxDir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing runs to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Inbox watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isPDF(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-PDF file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New PDF detected: %s", event.Name)

			// Settle delay so the file is fully written before reading
			time.Sleep(500 * time.Millisecond)

			if err := w.sem.acquire(ctx); err != nil {
				return err
			}
			w.wg.Add(1)
			go func(path string) {
				defer w.wg.Done()
				defer w.sem.release()

				if err := w.handler(ctx, path); err != nil {
					w.logger.Error(ctx, "Failed to process %s: %v", path, err)
				}
			}(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the underlying file watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isPDF(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".pdf"
}

package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/yt-subtitles-mcp/internal/logger"
)

type implWatcher struct {
	inboxDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// Start begins monitoring the inbox directory for new request files. Each
// request is handled in its own goroutine, bounded by the semaphore.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Request watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inboxDir)
	w.logger.Info(ctx, "Supported request files: .url, .txt")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for in-flight downloads to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Request watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if event.Op&fsnotify.Create == fsnotify.Create {
				if !isRequestFile(event.Name) {
					w.logger.Debug(ctx, "Ignoring non-request file: %s", event.Name)
					continue
				}

				w.logger.Info(ctx, "New request detected: %s", event.Name)

				// Small delay to ensure the file is fully written
				time.Sleep(500 * time.Millisecond)

				select {
				case w.semaphore <- struct{}{}:
					w.wg.Add(1)
					go func(filePath string) {
						defer w.wg.Done()
						defer func() { <-w.semaphore }()

						if err := w.handler(ctx, filePath); err != nil {
							w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
						}
					}(event.Name)
				case <-ctx.Done():
					return ctx.Err()
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isRequestFile checks if the file is a URL request file
func isRequestFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".url", ".txt":
		return true
	}
	return false
}

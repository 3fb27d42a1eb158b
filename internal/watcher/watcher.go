package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"course-analyzer/internal/logger"
)

type implWatcher struct {
	root     string
	trigger  TriggerFunc
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	debounce time.Duration
}

var relevantExtensions = []string{".mp4", ".srt", ".vtt", ".txt"}

// Start monitors the course tree and triggers a new analysis run after a
// quiet period following relevant changes. The trigger runs in its own
// goroutine; an analysis already in progress simply rejects the trigger.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching %s for course changes (debounce %s)", w.root, w.debounce)

	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Course watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !w.isRelevant(event.Name) {
				continue
			}

			w.logger.Debug(ctx, "Course change detected: %s", event.Name)

			// New course folders need their own watch.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.watcher.Add(event.Name); err != nil {
						w.logger.Warn(ctx, "Failed to watch %s: %v", event.Name, err)
					}
				}
			}

			pending = time.After(w.debounce)

		case <-pending:
			pending = nil
			go func() {
				if err := w.trigger(ctx); err != nil {
					w.logger.Warn(ctx, "Triggered analysis did not run: %v", err)
				}
			}()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the underlying file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isRelevant keeps only changes that can affect the catalog: media or sidecar
// files, and directories (which may be new course folders).
func (w *implWatcher) isRelevant(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return true
	}
	for _, relevant := range relevantExtensions {
		if ext == relevant {
			return true
		}
	}
	return false
}

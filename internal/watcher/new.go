package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"course-analyzer/internal/logger"
)

// New creates a Watcher over the course root and its first-level
// subdirectories. Changes are debounced before trigger fires.
func New(root string, trigger TriggerFunc, log logger.Logger, debounce time.Duration) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(root); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	// fsnotify does not recurse, so the first-level course folders are
	// watched individually.
	entries, err := os.ReadDir(root)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("read course root: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			if err := fsw.Add(filepath.Join(root, entry.Name())); err != nil {
				log.Warn(context.Background(), "Failed to watch %s: %v", entry.Name(), err)
			}
		}
	}

	if debounce <= 0 {
		debounce = 2 * time.Second
	}

	return &implWatcher{
		root:     root,
		trigger:  trigger,
		logger:   log,
		watcher:  fsw,
		debounce: debounce,
	}, nil
}

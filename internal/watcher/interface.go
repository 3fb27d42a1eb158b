package watcher

import "context"

// Watcher defines the interface for course directory monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// TriggerFunc starts a new analysis run. It reports an error when the run
// could not start, for example because one is already in progress.
type TriggerFunc func(ctx context.Context) error

package driven

import "context"

// Watcher reports that the source tree changed.
type Watcher interface {
	// Watch blocks until ctx is cancelled, calling onChange after each
	// debounced burst of relevant file system events.
	Watch(ctx context.Context, onChange func()) error
}

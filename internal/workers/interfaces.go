// Package workers provides the background jobs of the post board client and
// a Workers aggregate that starts and stops them together.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block: implementations spawn their own goroutine and stop it
// when ctx is cancelled or Stop is called. Stop blocks until the goroutine has
// exited and is safe to call on a worker that was never started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Loader is the part of the feed a refresh worker drives.
type Loader interface {
	Load(ctx context.Context) error
}

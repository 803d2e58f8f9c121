// Package workers runs the simulator's background jobs.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers together.
package workers

import "context"

// Worker is a background job. Run starts it and returns immediately; the
// job ends when ctx is cancelled or Stop is called. Stop blocks until the
// job has exited and is safe to call more than once.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

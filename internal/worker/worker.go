package worker

import (
	"context"
)

// Worker is a long-running background task.
type Worker interface {
	// Start runs the worker until it is stopped or the context ends.
	Start(ctx context.Context) error

	// Stop signals the worker to shut down.
	Stop() error

	// Name returns the worker name.
	Name() string
}

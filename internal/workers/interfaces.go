// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers as one.
package workers

import "context"

// Worker is a background process with an explicit lifecycle.
//
// Start must not block; the worker runs until ctx ends or Shutdown is
// called. Shutdown waits for in-flight work until its ctx ends.
type Worker interface {
	Start(ctx context.Context)
	Shutdown(ctx context.Context) error
}

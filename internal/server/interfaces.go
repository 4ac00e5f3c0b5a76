package server

import "context"

// Server defines the lifecycle contract of a process managed by this package.
type Server interface {
	// RunServer starts serving and blocks until ctx ends or a stop signal
	// arrives, then shuts everything down.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops everything that was started.
	Shutdown(ctx context.Context) error
}

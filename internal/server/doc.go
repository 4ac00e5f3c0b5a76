// Package server runs a process until it receives a stop signal.
//
// It owns the HTTP listener and the background workers of a binary, starts
// them together and shuts them down gracefully in order: the listener first,
// so no new writes are accepted, then the workers.
package server

// Package queue delivers encoded journal entries to workers at least once,
// in order per group key.
//
// Two implementations exist: [SQSQueue] on an SQS FIFO queue, and
// [LocalQueue], a bolt file that survives restarts, for single-node
// deployments.
package queue

import (
	"context"
	"errors"
)

var (
	// ErrTransport wraps failures talking to the queue backend.
	ErrTransport = errors.New("queue transport failure")

	// ErrClosed is returned when a closed queue is used.
	ErrClosed = errors.New("queue is closed")
)

// Message is one delivered payload.
type Message struct {
	ID       string
	GroupKey string
	Body     []byte
}

// Handler processes one message. Returning nil acknowledges it; an error
// parks the message as a dead letter.
type Handler func(ctx context.Context, msg Message) error

type Queue interface {
	Send(ctx context.Context, groupKey string, body []byte) error
	// Consume delivers messages to h until ctx ends.
	Consume(ctx context.Context, h Handler) error
	Close() error
}

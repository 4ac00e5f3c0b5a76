package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-db-journal/internal/journal"
	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/internal/metrics"
	"github.com/MKhiriev/go-db-journal/internal/queue"
	"github.com/MKhiriev/go-db-journal/internal/snapshot"
	"github.com/MKhiriev/go-db-journal/internal/utils"
	"github.com/MKhiriev/go-db-journal/models"
)

// Runtime owns the apply loop of one process. It is created once at start up
// and shared by every consumer goroutine.
type Runtime struct {
	consumer  Consumer
	sender    Sender
	snapshots Snapshots
	locker    Locker
	pending   PendingSet
	notifier  Notifier
	metrics   *metrics.Metrics

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRuntime(
	consumer Consumer,
	sender Sender,
	snapshots Snapshots,
	locker Locker,
	pending PendingSet,
	notifier Notifier,
	m *metrics.Metrics,
) *Runtime {
	return &Runtime{
		consumer:  consumer,
		sender:    sender,
		snapshots: snapshots,
		locker:    locker,
		pending:   pending,
		notifier:  notifier,
		metrics:   m,
	}
}

// Start begins consuming in the background. Calling Start on a running
// runtime does nothing.
func (r *Runtime) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.wg.Add(1)

	go func() {
		defer r.wg.Done()
		if err := r.consumer.Consume(runCtx, r.Handle); err != nil {
			logger.FromContext(runCtx).Err(err).Str("func", "Runtime.Start").Msg("consumer stopped with error")
		}
	}()
}

// Shutdown stops consuming and waits for in-flight entries until ctx ends.
// Entries still waiting for their lock are left on the queue.
func (r *Runtime) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("worker runtime did not stop in time: %w", ctx.Err())
	}
}

// Handle processes one serialized journal entry. It returns nil when the
// entry was applied or resubmitted for its retry, and an error wrapping
// [ErrApplyFailure] when it failed fatally. A context error means the
// entry was interrupted before it was applied and must be delivered again.
func (r *Runtime) Handle(ctx context.Context, msg queue.Message) error {
	entry, err := journal.Decode(msg.Body)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).
			Str("func", "Runtime.Handle").
			Str("message_id", msg.ID).
			Bytes("payload", msg.Body).
			Msg("dropping undecodable journal entry")
		r.metrics.EntriesProcessed.WithLabelValues(metrics.ResultFatal).Inc()
		return fmt.Errorf("%w: %w", ErrApplyFailure, err)
	}

	ctx, log := logger.FromContext(ctx).WithTask(utils.WithTaskID(ctx, entry.TaskID), entry.TaskID, entry.DBOwnerID)
	identity := r.snapshots.Identity(entry.DBOwnerID)

	hash, err := r.process(ctx, entry, identity)
	if err == nil {
		r.metrics.EntriesProcessed.WithLabelValues(metrics.ResultApplied).Inc()
		log.Info().Str("func", "Runtime.Handle").Int("changes", len(entry.Changes)).Str("hash", hash).
			Msg("journal entry applied")
		r.settle(ctx, entry, identity, hash)
		return nil
	}

	if ctx.Err() != nil {
		log.Warn().Err(err).Str("func", "Runtime.Handle").Msg("interrupted before apply, leaving entry queued")
		return ctx.Err()
	}

	if !entry.IsRetry && IsRetryable(err) {
		retryErr := r.resubmit(ctx, entry, identity)
		if retryErr == nil {
			r.metrics.EntriesProcessed.WithLabelValues(metrics.ResultRetried).Inc()
			log.Warn().Err(err).Str("func", "Runtime.Handle").Msg("journal entry failed, resubmitted for retry")
			return nil
		}
		err = errors.Join(err, retryErr)
	}

	r.metrics.EntriesProcessed.WithLabelValues(metrics.ResultFatal).Inc()
	log.Error().Err(err).
		Str("func", "Runtime.Handle").
		Bool("is_retry", entry.IsRetry).
		Bytes("payload", msg.Body).
		Msg("journal entry failed fatally")

	// a failed entry must not hold back the notification of the others
	r.settle(ctx, entry, identity, "")
	return fmt.Errorf("%w: task %s: %w", ErrApplyFailure, entry.TaskID, err)
}

// process marks the entry pending, then applies it under the snapshot lock
// and returns the new snapshot hash.
func (r *Runtime) process(ctx context.Context, entry models.JournalEntry, identity string) (string, error) {
	log := logger.FromContext(ctx)

	if err := r.pending.Add(ctx, identity, entry.TaskID); err != nil {
		return "", fmt.Errorf("mark task pending: %w", err)
	}

	waitStart := time.Now()
	lock, err := r.locker.Obtain(ctx, identity)
	metrics.ObserveSince(r.metrics.LockWait, waitStart)
	if err != nil {
		return "", fmt.Errorf("lock snapshot %s: %w", identity, err)
	}
	defer func() {
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
			log.Err(err).Str("func", "Runtime.process").Msg("error releasing snapshot lock")
		}
	}()

	// once locked the entry runs to completion
	return r.apply(context.WithoutCancel(ctx), entry)
}

func (r *Runtime) apply(ctx context.Context, entry models.JournalEntry) (string, error) {
	defer metrics.ObserveSince(r.metrics.ApplyDuration, time.Now())

	snap, err := r.snapshots.LoadOrCreate(ctx, entry.DBOwnerID)
	if err != nil {
		return "", fmt.Errorf("load snapshot: %w", err)
	}
	defer snap.Close()

	for _, change := range journal.DependencyOrder(entry.Changes) {
		if err = snap.Apply(ctx, change); err != nil {
			return "", fmt.Errorf("apply %s %s %s: %w", change.Action, change.Table, change.UUID, err)
		}
	}
	if err = snap.Commit(ctx); err != nil {
		return "", err
	}

	hash, err := r.snapshots.Save(ctx, snap)
	if err != nil {
		return "", fmt.Errorf("save snapshot: %w", err)
	}
	return hash, nil
}

func (r *Runtime) resubmit(ctx context.Context, entry models.JournalEntry, identity string) error {
	entry.IsRetry = true
	body, err := journal.Encode(entry)
	if err != nil {
		return err
	}
	if err = r.sender.Send(ctx, identity, body); err != nil {
		return fmt.Errorf("resubmit entry: %w", err)
	}
	return nil
}

// settle removes the task from the pending set and notifies the owner when
// nothing else is pending. hash is the snapshot hash after this entry, or
// empty when the entry failed and the stored hash must be looked up.
func (r *Runtime) settle(ctx context.Context, entry models.JournalEntry, identity, hash string) {
	log := logger.FromContext(ctx)

	drained, err := r.pending.Remove(ctx, identity, entry.TaskID)
	if err != nil {
		log.Err(err).Str("func", "Runtime.settle").Msg("error removing task from pending set")
		return
	}
	if !drained {
		log.Debug().Str("func", "Runtime.settle").Msg("other tasks pending, notification deferred")
		return
	}

	if hash == "" {
		hash, err = r.snapshots.Hash(ctx, entry.DBOwnerID)
		if errors.Is(err, snapshot.ErrNotFound) {
			return
		}
		if err != nil {
			log.Err(err).Str("func", "Runtime.settle").Msg("error reading snapshot hash")
			return
		}
	}

	if err = r.notifier.Notify(ctx, entry.DBOwnerID, hash); err != nil {
		log.Warn().Err(err).Str("func", "Runtime.settle").Msg("push notification failed")
	}
}

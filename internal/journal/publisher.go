package journal

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/internal/metrics"
	"github.com/MKhiriev/go-db-journal/models"
)

// Publisher captures, routes and groups a committed changeset and enqueues
// one entry per affected snapshot.
type Publisher struct {
	capture  *Capture
	router   *Router
	sender   Sender
	pending  PendingTracker
	identity Identifier
	metrics  *metrics.Metrics
}

func NewPublisher(graph Graph, sender Sender, pending PendingTracker, identity Identifier, m *metrics.Metrics) *Publisher {
	return &Publisher{
		capture:  NewCapture(graph),
		router:   NewRouter(graph),
		sender:   sender,
		pending:  pending,
		identity: identity,
		metrics:  m,
	}
}

// Build runs capture, routing and grouping without enqueueing anything.
func (p *Publisher) Build(ctx context.Context, changes models.Changeset) ([]models.JournalEntry, error) {
	captured, err := p.capture.Diff(ctx, changes)
	if err != nil {
		return nil, err
	}
	routed, err := p.router.Route(ctx, captured)
	if err != nil {
		return nil, err
	}
	return Group(routed)
}

// Publish enqueues the entries built from changes. Each task id is added to
// the owner's pending set before the entry is sent, so the set is never
// empty while the entry is in flight, and taken out again when the send
// fails. Entries are grouped by snapshot identity so each snapshot sees its
// entries in order.
func (p *Publisher) Publish(ctx context.Context, changes models.Changeset) ([]models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	if changes.Empty() {
		return nil, nil
	}

	entries, err := p.Build(ctx, changes)
	if err != nil {
		log.Err(err).Str("func", "Publisher.Publish").Msg("failed to build journal entries")
		return nil, err
	}

	for _, entry := range entries {
		body, err := Encode(entry)
		if err != nil {
			return nil, err
		}

		identity := p.identity.Identity(entry.DBOwnerID)
		if err = p.pending.Add(ctx, identity, entry.TaskID); err != nil {
			log.Err(err).
				Str("func", "Publisher.Publish").
				Str("task_id", entry.TaskID).
				Int64("db_owner_id", entry.DBOwnerID).
				Msg("failed to mark entry as pending")
			return nil, fmt.Errorf("mark entry %s pending: %w", entry.TaskID, err)
		}

		if err = p.sender.Send(ctx, identity, body); err != nil {
			log.Err(err).
				Str("func", "Publisher.Publish").
				Str("task_id", entry.TaskID).
				Int64("db_owner_id", entry.DBOwnerID).
				Msg("failed to enqueue journal entry")
			p.forget(ctx, identity, entry.TaskID)
			return nil, fmt.Errorf("enqueue entry %s: %w", entry.TaskID, err)
		}

		p.metrics.EntriesPublished.Inc()
		log.Debug().
			Str("func", "Publisher.Publish").
			Str("task_id", entry.TaskID).
			Int64("db_owner_id", entry.DBOwnerID).
			Int("changes", len(entry.Changes)).
			Msg("journal entry enqueued")
	}

	return entries, nil
}

// forget drops the task id of an entry that never reached the queue.
func (p *Publisher) forget(ctx context.Context, identity, taskID string) {
	if _, err := p.pending.Remove(context.WithoutCancel(ctx), identity, taskID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "Publisher.forget").
			Str("task_id", taskID).
			Msg("failed to remove unsent entry from pending set")
	}
}

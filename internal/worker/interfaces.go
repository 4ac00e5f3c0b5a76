package worker

//go:generate mockgen -source=interfaces.go -destination=../mock/worker_mock.go -package=mock -mock_names=Locker=MockSnapshotLocker,Sender=MockRetrySender

import (
	"context"

	"github.com/MKhiriev/go-db-journal/internal/coordination"
	"github.com/MKhiriev/go-db-journal/internal/queue"
	"github.com/MKhiriev/go-db-journal/internal/snapshot"
)

// Snapshots loads and persists per-user snapshots.
type Snapshots interface {
	Identity(userID int64) string
	LoadOrCreate(ctx context.Context, userID int64) (*snapshot.Snapshot, error)
	Save(ctx context.Context, snap *snapshot.Snapshot) (string, error)
	Hash(ctx context.Context, userID int64) (string, error)
}

// Locker grants exclusive access to one snapshot across all workers.
type Locker interface {
	Obtain(ctx context.Context, key string) (coordination.Lock, error)
}

// PendingSet tracks the tasks not yet applied to a snapshot.
type PendingSet interface {
	Add(ctx context.Context, identity, taskID string) error
	// Remove reports whether the set is empty afterwards.
	Remove(ctx context.Context, identity, taskID string) (bool, error)
}

// Notifier tells a user's devices that their snapshot changed.
type Notifier interface {
	Notify(ctx context.Context, userID int64, hash string) error
}

// Sender resubmits entries for their retry.
type Sender interface {
	Send(ctx context.Context, groupKey string, body []byte) error
}

// Consumer delivers queued entries to a handler until ctx ends.
type Consumer interface {
	Consume(ctx context.Context, h queue.Handler) error
}

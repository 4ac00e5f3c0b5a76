package journal

//go:generate mockgen -source=interfaces.go -destination=../mock/journal_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-db-journal/models"
)

// Graph is the read side of the primary database used for owner resolution
// and edge expansion.
type Graph interface {
	ProfileByUUID(ctx context.Context, uuid string) (models.Profile, error)
	CardByUUID(ctx context.Context, uuid string) (models.Card, error)
	FollowerUserIDs(ctx context.Context, userID int64) ([]int64, error)
	CardSubscriberUserIDs(ctx context.Context, ownerID int64) ([]int64, error)
}

// Sender enqueues an encoded entry. Entries sharing a group key are
// delivered in order.
type Sender interface {
	Send(ctx context.Context, groupKey string, body []byte) error
}

// PendingTracker records in-flight task ids per snapshot.
type PendingTracker interface {
	Add(ctx context.Context, identity, taskID string) error
	// Remove reports whether the set is empty afterwards.
	Remove(ctx context.Context, identity, taskID string) (bool, error)
}

// Identifier maps a user to the identity of their snapshot.
type Identifier interface {
	Identity(userID int64) string
}

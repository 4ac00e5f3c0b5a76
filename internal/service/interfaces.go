package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=DomainServiceWrapper

import (
	"context"

	"github.com/MKhiriev/go-db-journal/internal/coordination"
	"github.com/MKhiriev/go-db-journal/internal/snapshot"
	"github.com/MKhiriev/go-db-journal/models"
)

// SyncService serves a user's offline snapshot to their devices.
type SyncService interface {
	// Hash returns the current snapshot hash, creating the snapshot first
	// when the user has none.
	Hash(ctx context.Context, userID int64) (string, error)
	// Fetch returns the snapshot content, or only NotModified when
	// clientHash already matches the current hash.
	Fetch(ctx context.Context, userID int64, clientHash string) (models.SyncSnapshot, error)
	// Reset rebuilds the snapshot from the primary database.
	Reset(ctx context.Context, userID int64) (models.SyncSnapshot, error)
}

// DomainService performs the writes whose committed changes are journaled
// to every affected snapshot.
type DomainService interface {
	CreateProfile(ctx context.Context, userID int64, in models.ProfileInput) (models.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, uuid string, patch models.ProfilePatch) (models.Profile, error)
	DeleteProfile(ctx context.Context, userID int64, uuid string) error

	CreateCard(ctx context.Context, userID int64, in models.CardInput) (models.Card, error)
	UpdateCard(ctx context.Context, userID int64, uuid string, patch models.CardPatch) (models.Card, error)
	DeleteCard(ctx context.Context, userID int64, uuid string) error

	PutRelation(ctx context.Context, userID int64, in models.RelationInput) (models.ProfileRelation, error)
	DeleteRelation(ctx context.Context, userID int64, uuid string) error

	Subscribe(ctx context.Context, userID int64, in models.SubscriptionInput) (models.CardSubscription, error)
	Unsubscribe(ctx context.Context, userID int64, uuid string) error
}

// DeviceService manages the push targets of a user.
type DeviceService interface {
	RegisterDevice(ctx context.Context, userID int64, in models.DeviceInput) error
	RevokeDevice(ctx context.Context, userID int64, token string) error
}

// HealthService reports the reachability of the backing services.
type HealthService interface {
	Check(ctx context.Context) (models.HealthStatus, bool)
}

// DomainServiceWrapper defines middleware composition for DomainService.
// Implementations wrap an existing DomainService to add behavior such as
// logging or validating.
type DomainServiceWrapper interface {
	Wrap(DomainService) DomainService
}

// SnapshotStore is the part of the snapshot store the sync endpoints use.
type SnapshotStore interface {
	Identity(userID int64) string
	Hash(ctx context.Context, userID int64) (string, error)
	Read(ctx context.Context, userID int64) ([]byte, string, error)
	Create(ctx context.Context, userID int64, populate, overwrite bool) (*snapshot.Snapshot, error)
}

// Locker serializes snapshot rebuilds with the workers applying entries.
type Locker interface {
	Obtain(ctx context.Context, key string) (coordination.Lock, error)
}

// Publisher journals the changes of a committed session.
type Publisher interface {
	Publish(ctx context.Context, changes models.Changeset) ([]models.JournalEntry, error)
}

// UUIDGenerator issues identifiers for new rows.
type UUIDGenerator interface {
	Generate() string
}

// Pinger is a backing service probed by the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

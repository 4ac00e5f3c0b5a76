package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-db-journal/models"
)

// ErrorClassificator decides whether a failed database operation is worth
// another attempt.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// GraphRepository answers the read-only questions the journal needs about
// the primary database: who owns what and who must see it.
type GraphRepository interface {
	ProfileByUUID(ctx context.Context, uuid string) (models.Profile, error)
	CardByUUID(ctx context.Context, uuid string) (models.Card, error)
	// FollowerUserIDs returns the distinct users holding a relation that
	// points at any profile of userID.
	FollowerUserIDs(ctx context.Context, userID int64) ([]int64, error)
	// CardSubscriberUserIDs returns the distinct users subscribed to any
	// card owned by ownerID.
	CardSubscriberUserIDs(ctx context.Context, ownerID int64) ([]int64, error)
	// SeedRows returns every row userID is entitled to see offline.
	SeedRows(ctx context.Context, userID int64) (models.SeedSet, error)
}

// DeviceRepository stores the push tokens of signed-in devices.
type DeviceRepository interface {
	RegisterDevice(ctx context.Context, device models.DeviceSession) error
	RevokeDevice(ctx context.Context, userID int64, token string) error
	ActiveDeviceTokens(ctx context.Context, userID int64) ([]string, error)
}

// SessionFactory opens units of work on the primary database.
type SessionFactory interface {
	Begin(ctx context.Context) (Session, error)
}

// Session is a single primary-database transaction that records every row
// it adds, modifies or deletes. Commit returns that record so the caller can
// publish it.
type Session interface {
	ProfileByUUID(ctx context.Context, uuid string) (models.Profile, error)
	CardByUUID(ctx context.Context, uuid string) (models.Card, error)

	CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, uuid string, patch models.ProfilePatch) (models.Profile, error)
	DeleteProfile(ctx context.Context, userID int64, uuid string) error

	CreateCard(ctx context.Context, card models.Card) (models.Card, error)
	UpdateCard(ctx context.Context, userID int64, uuid string, patch models.CardPatch) (models.Card, error)
	DeleteCard(ctx context.Context, userID int64, uuid string) error

	UpsertRelation(ctx context.Context, relation models.ProfileRelation) (models.ProfileRelation, error)
	DeleteRelation(ctx context.Context, userID int64, uuid string) error

	CreateSubscription(ctx context.Context, subscription models.CardSubscription) (models.CardSubscription, error)
	DeleteSubscription(ctx context.Context, userID int64, uuid string) error

	Commit() (models.Changeset, error)
	Rollback() error
}

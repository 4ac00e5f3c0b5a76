package snapshot

import (
	"context"

	"github.com/MKhiriev/go-db-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/snapshot_mock.go -package=mock

// Backend persists snapshot bytes under a key. Implementations must report
// a missing key as [ErrNotFound] from Get and Head, and treat deleting a
// missing key as success.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores data and returns its content hash.
	Put(ctx context.Context, key string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
	// Head returns the content hash of the stored snapshot.
	Head(ctx context.Context, key string) (string, error)
	// Identity returns a process-independent name for key, used to derive
	// lock and pending-set keys shared by all workers.
	Identity(key string) string
}

// SeedSource yields every row a freshly created snapshot must contain.
type SeedSource interface {
	SeedRows(ctx context.Context, userID int64) (models.SeedSet, error)
}

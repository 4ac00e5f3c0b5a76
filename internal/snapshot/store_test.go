package snapshot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, seeds *stubSeeds) (*Store, string) {
	t.Helper()
	base := t.TempDir()
	return NewStore(NewFileBackend(base), seeds, t.TempDir(), logger.Nop()), base
}

func seededSet() models.SeedSet {
	own := testProfile("p-own", 1, "owner")
	followed := testProfile("p-followed", 2, "followed")
	return models.SeedSet{
		Profiles: []models.Profile{own, followed},
		Cards:    []models.Card{testCard("c-followed", "p-followed", 2)},
		Relations: []models.ProfileRelation{{
			UUID: "rel", UserID: 1, FromProfileUUID: "p-own", ToProfileUUID: "p-followed",
			FromUserID: 1, ToUserID: 2, Status: models.RelationFollow, CommitID: 1,
		}},
		Subscriptions: []models.CardSubscription{{
			UUID: "sub", UserID: 1, ProfileUUID: "p-own", CardUUID: "c-followed", CardOwnerID: 2, CommitID: 1,
		}},
	}
}

// ── Create ────────────────────────────────────────────────────────────────────

func TestStore_Create_Populated(t *testing.T) {
	ctx := context.Background()
	seeds := &stubSeeds{set: seededSet()}
	store, base := newTestStore(t, seeds)

	snap, err := store.Create(ctx, 1, true, false)
	require.NoError(t, err)
	defer snap.Close()

	assert.Equal(t, 1, seeds.calls)
	assert.FileExists(t, filepath.Join(base, "1", "sync_db"))

	counts := map[models.Table]int{
		models.TableProfile:          2,
		models.TableCard:             1,
		models.TableProfileRelation:  1,
		models.TableCardSubscription: 1,
	}
	for table, want := range counts {
		got, err := snap.Count(ctx, table)
		require.NoError(t, err)
		assert.Equal(t, want, got, table.String())
	}

	row, err := snap.Row(ctx, models.TableProfileRelation, "rel")
	require.NoError(t, err)
	assert.Equal(t, "FOLLOW", row["status"])
}

func TestStore_Create_Empty(t *testing.T) {
	ctx := context.Background()
	seeds := &stubSeeds{set: seededSet()}
	store, _ := newTestStore(t, seeds)

	snap, err := store.Create(ctx, 1, false, false)
	require.NoError(t, err)
	defer snap.Close()

	assert.Zero(t, seeds.calls)
	n, err := snap.Count(ctx, models.TableProfile)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_Create_SeedError(t *testing.T) {
	store, base := newTestStore(t, &stubSeeds{err: errors.New("db down")})

	_, err := store.Create(context.Background(), 1, true, false)
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(base, "1", "sync_db"))
}

func TestStore_Create_Overwrite(t *testing.T) {
	ctx := context.Background()
	seeds := &stubSeeds{set: seededSet()}
	store, _ := newTestStore(t, seeds)

	first, err := store.Create(ctx, 1, true, false)
	require.NoError(t, err)
	require.NoError(t, first.Close())
	before, err := store.Hash(ctx, 1)
	require.NoError(t, err)

	seeds.set = models.SeedSet{Profiles: []models.Profile{testProfile("p-own", 1, "renamed")}}
	second, err := store.Create(ctx, 1, true, true)
	require.NoError(t, err)
	defer second.Close()

	after, err := store.Hash(ctx, 1)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)

	n, err := second.Count(ctx, models.TableCard)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_Create_InvalidUser(t *testing.T) {
	store, _ := newTestStore(t, &stubSeeds{})
	_, err := store.Create(context.Background(), 0, true, false)
	assert.ErrorIs(t, err, ErrInvalidUserID)
}

// ── Load / Hash / Delete ──────────────────────────────────────────────────────

func TestStore_Load_NotFound(t *testing.T) {
	store, _ := newTestStore(t, &stubSeeds{})
	_, err := store.Load(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_LoadOrCreate_CreatesOnMiss(t *testing.T) {
	ctx := context.Background()
	seeds := &stubSeeds{set: seededSet()}
	store, _ := newTestStore(t, seeds)

	snap, err := store.LoadOrCreate(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, snap.Close())
	assert.Equal(t, 1, seeds.calls)

	snap, err = store.LoadOrCreate(ctx, 1)
	require.NoError(t, err)
	defer snap.Close()
	assert.Equal(t, 1, seeds.calls)

	n, err := snap.Count(ctx, models.TableProfile)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestStore_Hash_NotFoundDoesNotCreate(t *testing.T) {
	seeds := &stubSeeds{}
	store, base := newTestStore(t, seeds)

	_, err := store.Hash(context.Background(), 3)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, seeds.calls)
	assert.NoDirExists(t, filepath.Join(base, "3"))
}

// TestStore_Hash_Stable verifies that consecutive hash reads without writes agree.
func TestStore_Hash_Stable(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, &stubSeeds{set: seededSet()})

	snap, err := store.Create(ctx, 1, true, false)
	require.NoError(t, err)
	require.NoError(t, snap.Close())

	first, err := store.Hash(ctx, 1)
	require.NoError(t, err)
	second, err := store.Hash(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	data, hash, err := store.Read(ctx, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, first, hash)
}

// TestStore_Delete_Idempotent verifies that deleting twice never fails.
func TestStore_Delete_Idempotent(t *testing.T) {
	ctx := context.Background()
	store, base := newTestStore(t, &stubSeeds{set: seededSet()})

	snap, err := store.Create(ctx, 1, true, false)
	require.NoError(t, err)
	require.NoError(t, snap.Close())

	require.NoError(t, store.Delete(ctx, 1))
	require.NoError(t, store.Delete(ctx, 1))
	assert.NoFileExists(t, filepath.Join(base, "1", "sync_db"))

	_, err = store.Hash(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Snapshot.Apply ────────────────────────────────────────────────────────────

func TestSnapshot_ApplyAndSave(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, &stubSeeds{set: seededSet()})

	snap, err := store.Create(ctx, 1, true, false)
	require.NoError(t, err)
	defer snap.Close()
	before, err := store.Hash(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, snap.Apply(ctx, models.ChangeRecord{
		Table: models.TableProfile, UUID: "p-followed", Action: models.ActionModify,
		Data: map[string]any{"description": "new bio"},
	}))
	require.NoError(t, snap.Apply(ctx, addChange(testCard("c-new", "p-own", 1))))
	require.NoError(t, snap.Apply(ctx, models.ChangeRecord{
		Table: models.TableCardSubscription, UUID: "sub", Action: models.ActionDelete,
	}))
	require.NoError(t, snap.Commit(ctx))

	hash, err := store.Save(ctx, snap)
	require.NoError(t, err)
	assert.NotEqual(t, before, hash)

	reloaded, err := store.Load(ctx, 1)
	require.NoError(t, err)
	defer reloaded.Close()

	row, err := reloaded.Row(ctx, models.TableProfile, "p-followed")
	require.NoError(t, err)
	assert.Equal(t, "new bio", row["description"])
	assert.Equal(t, "followed", row["name"])

	_, err = reloaded.Row(ctx, models.TableCard, "c-new")
	assert.NoError(t, err)
	_, err = reloaded.Row(ctx, models.TableCardSubscription, "sub")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSnapshot_Apply_AddUpsertsExisting(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, &stubSeeds{set: seededSet()})

	snap, err := store.Create(ctx, 1, true, false)
	require.NoError(t, err)
	defer snap.Close()

	require.NoError(t, snap.Apply(ctx, addChange(testProfile("p-followed", 2, "again"))))
	require.NoError(t, snap.Commit(ctx))

	row, err := snap.Row(ctx, models.TableProfile, "p-followed")
	require.NoError(t, err)
	assert.Equal(t, "again", row["name"])

	n, err := snap.Count(ctx, models.TableCard)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "dependent card must survive an upsert of its profile")
}

func TestSnapshot_Apply_AbsentRowsAreNoOps(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, &stubSeeds{})

	snap, err := store.Create(ctx, 1, false, false)
	require.NoError(t, err)
	defer snap.Close()

	assert.NoError(t, snap.Apply(ctx, models.ChangeRecord{
		Table: models.TableCard, UUID: "missing", Action: models.ActionModify, Data: map[string]any{"title": "x"},
	}))
	assert.NoError(t, snap.Apply(ctx, models.ChangeRecord{
		Table: models.TableProfile, UUID: "missing", Action: models.ActionDelete,
	}))
	assert.NoError(t, snap.Commit(ctx))
}

func TestSnapshot_Apply_Errors(t *testing.T) {
	tests := []struct {
		name    string
		change  models.ChangeRecord
		wantErr error
	}{
		{
			name: "undeclared column",
			change: models.ChangeRecord{
				Table: models.TableProfile, UUID: "x", Action: models.ActionAdd,
				Data: map[string]any{"is_locked": true},
			},
			wantErr: ErrSchemaViolation,
		},
		{
			name:    "unknown table",
			change:  models.ChangeRecord{Table: models.Table(42), UUID: "x", Action: models.ActionAdd},
			wantErr: ErrInvalidChange,
		},
		{
			name:    "unknown action",
			change:  models.ChangeRecord{Table: models.TableCard, UUID: "x", Action: "upsert"},
			wantErr: ErrInvalidChange,
		},
		{
			name:    "empty uuid",
			change:  models.ChangeRecord{Table: models.TableCard, Action: models.ActionDelete},
			wantErr: ErrInvalidChange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store, _ := newTestStore(t, &stubSeeds{})
			snap, err := store.Create(ctx, 1, false, false)
			require.NoError(t, err)
			defer snap.Close()

			assert.ErrorIs(t, snap.Apply(ctx, tt.change), tt.wantErr)
		})
	}
}

// TestSnapshot_ForeignKeysEnforced verifies that a card referencing a
// profile the snapshot does not hold is rejected.
func TestSnapshot_ForeignKeysEnforced(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, &stubSeeds{})

	snap, err := store.Create(ctx, 1, false, false)
	require.NoError(t, err)
	defer snap.Close()

	err = snap.Apply(ctx, addChange(testCard("c1", "no-such-profile", 1)))
	assert.Error(t, err)
}

func TestSnapshot_Close_RemovesWorkingCopy(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, &stubSeeds{})

	snap, err := store.Create(ctx, 1, false, false)
	require.NoError(t, err)
	path := snap.path

	require.NoError(t, snap.Close())
	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

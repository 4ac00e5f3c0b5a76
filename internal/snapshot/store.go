// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/internal/utils"
	"github.com/MKhiriev/go-db-journal/models"
)

// Store manages the lifecycle of per-user snapshots on top of a [Backend].
type Store struct {
	backend Backend
	seeds   SeedSource
	workDir string
	logger  *logger.Logger
}

// NewStore builds a snapshot store. Working copies are opened in workDir.
func NewStore(backend Backend, seeds SeedSource, workDir string, log *logger.Logger) *Store {
	return &Store{
		backend: backend,
		seeds:   seeds,
		workDir: workDir,
		logger:  log,
	}
}

// Key returns the backend key of userID's snapshot, relative to the
// backend's base location.
func Key(userID int64) string {
	return fmt.Sprintf("%d/sync_db", userID)
}

// Identity returns the shared name of userID's snapshot. Locks and pending
// sets are keyed by it.
func (s *Store) Identity(userID int64) string {
	return s.backend.Identity(Key(userID))
}

// Create allocates a new snapshot with the fixed schema, optionally seeds it
// from the transactional store, and persists it. With overwrite set, any
// existing snapshot is deleted first.
//
// The returned snapshot has no open transaction; the caller must Close it.
func (s *Store) Create(ctx context.Context, userID int64, populate, overwrite bool) (*Snapshot, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}
	log := logger.FromContext(ctx)

	if overwrite {
		if err := s.Delete(ctx, userID); err != nil {
			return nil, err
		}
	}

	snap, err := s.newWorkingCopy(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err = s.build(ctx, snap, populate); err != nil {
		snap.Close()
		return nil, err
	}

	hash, err := s.Save(ctx, snap)
	if err != nil {
		snap.Close()
		return nil, err
	}

	log.Info().Str("func", "Store.Create").Int64("user_id", userID).Bool("populate", populate).
		Str("hash", hash).Msg("snapshot created")
	return snap, nil
}

func (s *Store) build(ctx context.Context, snap *Snapshot, populate bool) error {
	tx, err := snap.begin(ctx)
	if err != nil {
		return err
	}
	if err = createSchema(ctx, tx); err != nil {
		return err
	}

	if populate {
		seed, err := s.seeds.SeedRows(ctx, snap.userID)
		if err != nil {
			return fmt.Errorf("error loading seed rows for user %d: %w", snap.userID, err)
		}
		for _, row := range seed.Rows() {
			change := models.ChangeRecord{
				Table:  row.Table(),
				UUID:   row.RowUUID(),
				Action: models.ActionAdd,
				Data:   Project(row.Table(), row.Values()),
			}
			if err = snap.Apply(ctx, change); err != nil {
				return fmt.Errorf("error seeding %s uuid=%s: %w", row.Table(), row.RowUUID(), err)
			}
		}
	}

	return snap.Commit(ctx)
}

// Load opens the persisted snapshot of userID. It returns [ErrNotFound] if
// none exists.
func (s *Store) Load(ctx context.Context, userID int64) (*Snapshot, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}

	data, err := s.backend.Get(ctx, Key(userID))
	if err != nil {
		return nil, err
	}

	f, err := os.CreateTemp(s.workDir, fmt.Sprintf("sync_db-%d-*.sqlite", userID))
	if err != nil {
		return nil, fmt.Errorf("error creating snapshot working copy: %w", err)
	}
	path := f.Name()
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("error writing snapshot working copy: %w", err)
	}

	snap, err := openSnapshot(ctx, userID, Key(userID), path)
	if err != nil {
		os.Remove(path)
		return nil, err
	}
	return snap, nil
}

// LoadOrCreate loads userID's snapshot, creating and seeding it when absent.
func (s *Store) LoadOrCreate(ctx context.Context, userID int64) (*Snapshot, error) {
	snap, err := s.Load(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Info().Str("func", "Store.LoadOrCreate").Int64("user_id", userID).
			Msg("snapshot missing, creating from source")
		return s.Create(ctx, userID, true, false)
	}
	return snap, err
}

// Hash returns the content hash of userID's persisted snapshot, or
// [ErrNotFound]. It never creates a snapshot.
func (s *Store) Hash(ctx context.Context, userID int64) (string, error) {
	if userID <= 0 {
		return "", ErrInvalidUserID
	}
	return s.backend.Head(ctx, Key(userID))
}

// Read returns the persisted bytes of userID's snapshot together with their hash.
func (s *Store) Read(ctx context.Context, userID int64) ([]byte, string, error) {
	if userID <= 0 {
		return nil, "", ErrInvalidUserID
	}
	data, err := s.backend.Get(ctx, Key(userID))
	if err != nil {
		return nil, "", err
	}
	return data, utils.ContentHash(data), nil
}

// Delete removes userID's snapshot. Deleting a missing snapshot succeeds.
func (s *Store) Delete(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return ErrInvalidUserID
	}
	if err := s.backend.Delete(ctx, Key(userID)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Store.Delete").Int64("user_id", userID).
			Msg("error deleting snapshot")
		return err
	}
	return nil
}

// Save persists the committed content of snap and returns its new hash.
func (s *Store) Save(ctx context.Context, snap *Snapshot) (string, error) {
	data, err := snap.Bytes()
	if err != nil {
		return "", fmt.Errorf("error reading snapshot working copy: %w", err)
	}
	return s.backend.Put(ctx, snap.key, data)
}

func (s *Store) newWorkingCopy(ctx context.Context, userID int64) (*Snapshot, error) {
	f, err := os.CreateTemp(s.workDir, fmt.Sprintf("sync_db-%d-*.sqlite", userID))
	if err != nil {
		return nil, fmt.Errorf("error creating snapshot working copy: %w", err)
	}
	path := f.Name()
	f.Close()

	snap, err := openSnapshot(ctx, userID, Key(userID), path)
	if err != nil {
		os.Remove(path)
		return nil, err
	}
	return snap, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/internal/snapshot"
	"github.com/MKhiriev/go-db-journal/models"
)

// syncService is the concrete implementation of SyncService.
//
// Reads go straight to the snapshot store. Creation of a missing snapshot
// and Reset take the snapshot lock, so they never race a worker applying
// journal entries to the same snapshot.
type syncService struct {
	snapshots SnapshotStore
	locker    Locker

	logger *logger.Logger
}

func NewSyncService(snapshots SnapshotStore, locker Locker, logger *logger.Logger) SyncService {
	return &syncService{
		snapshots: snapshots,
		locker:    locker,
		logger:    logger,
	}
}

// Hash implements SyncService.
func (s *syncService) Hash(ctx context.Context, userID int64) (string, error) {
	hash, err := s.snapshots.Hash(ctx, userID)
	if !errors.Is(err, snapshot.ErrNotFound) {
		return hash, err
	}

	if err = s.createMissing(ctx, userID); err != nil {
		return "", err
	}
	return s.snapshots.Hash(ctx, userID)
}

// Fetch implements SyncService. The hash is computed from the bytes that
// are returned, so the pair is always consistent.
func (s *syncService) Fetch(ctx context.Context, userID int64, clientHash string) (models.SyncSnapshot, error) {
	data, hash, err := s.snapshots.Read(ctx, userID)
	if errors.Is(err, snapshot.ErrNotFound) {
		if err = s.createMissing(ctx, userID); err != nil {
			return models.SyncSnapshot{}, err
		}
		data, hash, err = s.snapshots.Read(ctx, userID)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncService.Fetch").Int64("user_id", userID).
			Msg("error reading snapshot")
		return models.SyncSnapshot{}, err
	}

	if clientHash != "" && clientHash == hash {
		return models.SyncSnapshot{Hash: hash, NotModified: true}, nil
	}
	return models.SyncSnapshot{Hash: hash, DB: data}, nil
}

// Reset implements SyncService.
func (s *syncService) Reset(ctx context.Context, userID int64) (models.SyncSnapshot, error) {
	log := logger.FromContext(ctx)

	err := s.locked(ctx, userID, func() error {
		snap, err := s.snapshots.Create(ctx, userID, true, true)
		if err != nil {
			return err
		}
		return snap.Close()
	})
	if err != nil {
		log.Err(err).Str("func", "syncService.Reset").Int64("user_id", userID).Msg("error recreating snapshot")
		return models.SyncSnapshot{}, fmt.Errorf("recreate snapshot: %w", err)
	}

	data, hash, err := s.snapshots.Read(ctx, userID)
	if err != nil {
		return models.SyncSnapshot{}, err
	}
	log.Info().Str("func", "syncService.Reset").Int64("user_id", userID).Str("hash", hash).Msg("snapshot recreated")
	return models.SyncSnapshot{Hash: hash, DB: data}, nil
}

// createMissing builds and seeds userID's snapshot unless another caller
// did so while this one waited for the lock.
func (s *syncService) createMissing(ctx context.Context, userID int64) error {
	return s.locked(ctx, userID, func() error {
		_, err := s.snapshots.Hash(ctx, userID)
		if !errors.Is(err, snapshot.ErrNotFound) {
			return err
		}

		snap, err := s.snapshots.Create(ctx, userID, true, false)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "syncService.createMissing").Int64("user_id", userID).
				Msg("error creating snapshot")
			return err
		}
		return snap.Close()
	})
}

func (s *syncService) locked(ctx context.Context, userID int64, fn func() error) error {
	lock, err := s.locker.Obtain(ctx, s.snapshots.Identity(userID))
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "syncService.locked").Msg("error releasing snapshot lock")
		}
	}()

	return fn()
}

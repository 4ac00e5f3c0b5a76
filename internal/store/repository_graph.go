package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/models"
)

// graphRepository is the PostgreSQL-backed implementation of
// [GraphRepository]. Reads are retried on transient failures because the
// journal workers call it while holding a snapshot lock.
type graphRepository struct {
	*DB
	logger *logger.Logger
}

// NewGraphRepository constructs a [GraphRepository] backed by db.
func NewGraphRepository(db *DB, logger *logger.Logger) GraphRepository {
	return &graphRepository{
		DB:     db,
		logger: logger,
	}
}

// ProfileByUUID loads a profile regardless of its lock or deletion state.
func (g *graphRepository) ProfileByUUID(ctx context.Context, uuid string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(profileColumns...).From("profiles").Where(sq.Eq{"uuid": uuid}).ToSql()
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var profile models.Profile
	err = g.withRetry(ctx, func() error {
		var scanErr error
		profile, scanErr = scanProfile(g.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrRowNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "graphRepository.ProfileByUUID").
			Str("uuid", uuid).
			Msg("failed to load profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return profile, nil
}

// CardByUUID loads a card regardless of its lock or deletion state.
func (g *graphRepository) CardByUUID(ctx context.Context, uuid string) (models.Card, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(cardColumns...).From("cards").Where(sq.Eq{"uuid": uuid}).ToSql()
	if err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var card models.Card
	err = g.withRetry(ctx, func() error {
		var scanErr error
		card, scanErr = scanCard(g.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Card{}, ErrRowNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "graphRepository.CardByUUID").
			Str("uuid", uuid).
			Msg("failed to load card")
		return models.Card{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return card, nil
}

func (g *graphRepository) FollowerUserIDs(ctx context.Context, userID int64) ([]int64, error) {
	return g.userIDs(ctx, "graphRepository.FollowerUserIDs", selectFollowerUserIDs, userID)
}

func (g *graphRepository) CardSubscriberUserIDs(ctx context.Context, ownerID int64) ([]int64, error) {
	return g.userIDs(ctx, "graphRepository.CardSubscriberUserIDs", selectCardSubscriberUserIDs, ownerID)
}

func (g *graphRepository) userIDs(ctx context.Context, funcName, query string, userID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	var ids []int64
	err := g.withRetry(ctx, func() error {
		rows, err := g.DB.QueryContext(ctx, query, userID)
		if err != nil {
			return err
		}
		ids, err = scanAll(rows, func(s rowScanner) (int64, error) {
			var id int64
			err := s.Scan(&id)
			return id, err
		})
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("user_id", userID).
			Msg("failed to query user ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ids, nil
}

// SeedRows runs the four seed queries inside one read-only transaction so
// the returned set is consistent.
func (g *graphRepository) SeedRows(ctx context.Context, userID int64) (models.SeedSet, error) {
	log := logger.FromContext(ctx)

	var seeds models.SeedSet
	err := g.withRetry(ctx, func() error {
		var err error
		seeds, err = g.seedRows(ctx, userID)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "graphRepository.SeedRows").
			Int64("user_id", userID).
			Msg("failed to collect seed rows")
		return models.SeedSet{}, err
	}

	log.Debug().
		Str("func", "graphRepository.SeedRows").
		Int64("user_id", userID).
		Int("profiles", len(seeds.Profiles)).
		Int("cards", len(seeds.Cards)).
		Int("relations", len(seeds.Relations)).
		Int("subscriptions", len(seeds.Subscriptions)).
		Msg("seed rows collected")

	return seeds, nil
}

func (g *graphRepository) seedRows(ctx context.Context, userID int64) (models.SeedSet, error) {
	tx, err := g.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return models.SeedSet{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var seeds models.SeedSet
	if seeds.Profiles, err = querySeed(ctx, tx, seedProfiles, userID, scanProfile); err != nil {
		return models.SeedSet{}, err
	}
	if seeds.Cards, err = querySeed(ctx, tx, seedCards, userID, scanCard); err != nil {
		return models.SeedSet{}, err
	}
	if seeds.Relations, err = querySeed(ctx, tx, seedRelations, userID, scanRelation); err != nil {
		return models.SeedSet{}, err
	}
	if seeds.Subscriptions, err = querySeed(ctx, tx, seedSubscriptions, userID, scanSubscription); err != nil {
		return models.SeedSet{}, err
	}

	if err = tx.Commit(); err != nil {
		return models.SeedSet{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return seeds, nil
}

func querySeed[T any](ctx context.Context, tx *sql.Tx, query string, userID int64, scan func(rowScanner) (T, error)) ([]T, error) {
	rows, err := tx.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	items, err := scanAll(rows, scan)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return items, nil
}

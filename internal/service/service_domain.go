package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/internal/store"
	"github.com/MKhiriev/go-db-journal/models"
)

type domainService struct {
	sessions  store.SessionFactory
	publisher Publisher
	uuids     UUIDGenerator

	logger *logger.Logger
}

// NewDomainService constructs a DomainService. Every write runs in its own
// session; once the session commits, its changes are published as journal
// entries before the call returns.
func NewDomainService(sessions store.SessionFactory, publisher Publisher, uuids UUIDGenerator, logger *logger.Logger) DomainService {
	return &domainService{
		sessions:  sessions,
		publisher: publisher,
		uuids:     uuids,
		logger:    logger,
	}
}

func (d *domainService) CreateProfile(ctx context.Context, userID int64, in models.ProfileInput) (models.Profile, error) {
	var created models.Profile
	err := d.write(ctx, "domainService.CreateProfile", func(s store.Session) error {
		var err error
		created, err = s.CreateProfile(ctx, models.Profile{
			UUID:        d.uuids.Generate(),
			UserID:      userID,
			Name:        strings.TrimSpace(in.Name),
			Email:       in.Email,
			Description: in.Description,
			AvatarURL:   in.AvatarURL,
			IsPrivate:   in.IsPrivate,
		})
		return err
	})
	return created, err
}

func (d *domainService) UpdateProfile(ctx context.Context, userID int64, uuid string, patch models.ProfilePatch) (models.Profile, error) {
	var updated models.Profile
	err := d.write(ctx, "domainService.UpdateProfile", func(s store.Session) error {
		var err error
		updated, err = s.UpdateProfile(ctx, userID, uuid, patch)
		return err
	})
	return updated, err
}

func (d *domainService) DeleteProfile(ctx context.Context, userID int64, uuid string) error {
	return d.write(ctx, "domainService.DeleteProfile", func(s store.Session) error {
		return s.DeleteProfile(ctx, userID, uuid)
	})
}

func (d *domainService) CreateCard(ctx context.Context, userID int64, in models.CardInput) (models.Card, error) {
	var created models.Card
	err := d.write(ctx, "domainService.CreateCard", func(s store.Session) error {
		if _, err := ownProfile(ctx, s, userID, in.ProfileUUID); err != nil {
			return err
		}

		var err error
		created, err = s.CreateCard(ctx, models.Card{
			UUID:        d.uuids.Generate(),
			ProfileUUID: in.ProfileUUID,
			UserID:      userID,
			Title:       strings.TrimSpace(in.Title),
			Content:     in.Content,
			IsPrivate:   in.IsPrivate,
		})
		return err
	})
	return created, err
}

func (d *domainService) UpdateCard(ctx context.Context, userID int64, uuid string, patch models.CardPatch) (models.Card, error) {
	var updated models.Card
	err := d.write(ctx, "domainService.UpdateCard", func(s store.Session) error {
		var err error
		updated, err = s.UpdateCard(ctx, userID, uuid, patch)
		return err
	})
	return updated, err
}

func (d *domainService) DeleteCard(ctx context.Context, userID int64, uuid string) error {
	return d.write(ctx, "domainService.DeleteCard", func(s store.Session) error {
		return s.DeleteCard(ctx, userID, uuid)
	})
}

// PutRelation creates the edge between two profiles or changes its status.
// An empty status means FOLLOW.
func (d *domainService) PutRelation(ctx context.Context, userID int64, in models.RelationInput) (models.ProfileRelation, error) {
	status := in.Status
	if status == "" {
		status = models.RelationFollow
	}

	var relation models.ProfileRelation
	err := d.write(ctx, "domainService.PutRelation", func(s store.Session) error {
		if _, err := ownProfile(ctx, s, userID, in.FromProfileUUID); err != nil {
			return err
		}
		to, err := s.ProfileByUUID(ctx, in.ToProfileUUID)
		if err != nil {
			return err
		}
		if to.DeletedAt != nil {
			return fmt.Errorf("%w: %s", ErrProfileUnavailable, to.UUID)
		}

		relation, err = s.UpsertRelation(ctx, models.ProfileRelation{
			UUID:            d.uuids.Generate(),
			UserID:          userID,
			FromProfileUUID: in.FromProfileUUID,
			ToProfileUUID:   in.ToProfileUUID,
			FromUserID:      userID,
			ToUserID:        to.UserID,
			Status:          status,
		})
		return err
	})
	return relation, err
}

func (d *domainService) DeleteRelation(ctx context.Context, userID int64, uuid string) error {
	return d.write(ctx, "domainService.DeleteRelation", func(s store.Session) error {
		return s.DeleteRelation(ctx, userID, uuid)
	})
}

func (d *domainService) Subscribe(ctx context.Context, userID int64, in models.SubscriptionInput) (models.CardSubscription, error) {
	var sub models.CardSubscription
	err := d.write(ctx, "domainService.Subscribe", func(s store.Session) error {
		if _, err := ownProfile(ctx, s, userID, in.ProfileUUID); err != nil {
			return err
		}
		card, err := s.CardByUUID(ctx, in.CardUUID)
		if err != nil {
			return err
		}
		if card.DeletedAt != nil || card.IsLocked {
			return fmt.Errorf("%w: %s", ErrCardUnavailable, card.UUID)
		}

		sub, err = s.CreateSubscription(ctx, models.CardSubscription{
			UUID:        d.uuids.Generate(),
			UserID:      userID,
			ProfileUUID: in.ProfileUUID,
			CardUUID:    in.CardUUID,
			CardOwnerID: card.UserID,
		})
		return err
	})
	return sub, err
}

func (d *domainService) Unsubscribe(ctx context.Context, userID int64, uuid string) error {
	return d.write(ctx, "domainService.Unsubscribe", func(s store.Session) error {
		return s.DeleteSubscription(ctx, userID, uuid)
	})
}

// write runs fn in a new session, commits it and publishes the recorded
// changes. The session is rolled back when fn fails.
func (d *domainService) write(ctx context.Context, funcName string, fn func(store.Session) error) error {
	log := logger.FromContext(ctx)

	session, err := d.sessions.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Rollback(); err != nil {
			log.Warn().Err(err).Str("func", funcName).Msg("error rolling back session")
		}
	}()

	if err = fn(session); err != nil {
		log.Debug().Err(err).Str("func", funcName).Msg("write rejected")
		return err
	}

	changes, err := session.Commit()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error committing session")
		return err
	}

	// the rows are committed, a disconnecting client must not drop their entries
	entries, err := d.publisher.Publish(context.WithoutCancel(ctx), changes)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("changes committed but journal entries were not published")
		return fmt.Errorf("%w: %w", ErrJournalNotPublished, err)
	}

	log.Debug().Str("func", funcName).Int("entries", len(entries)).Msg("write journaled")
	return nil
}

// ownProfile loads a live profile of userID.
func ownProfile(ctx context.Context, s store.Session, userID int64, uuid string) (models.Profile, error) {
	p, err := s.ProfileByUUID(ctx, uuid)
	if err != nil {
		return models.Profile{}, err
	}
	if p.UserID != userID {
		return models.Profile{}, store.ErrForbidden
	}
	if p.DeletedAt != nil || p.IsLocked {
		return models.Profile{}, fmt.Errorf("%w: %s", ErrProfileUnavailable, uuid)
	}
	return p, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-db-journal/internal/utils"
	"github.com/MKhiriev/go-db-journal/internal/validators"
	"github.com/MKhiriev/go-db-journal/models"
)

// DomainValidationService rejects malformed writes before they open a
// session on the primary database.
type DomainValidationService struct {
	inner     DomainService
	validator validators.Validator
}

func NewDomainValidationService() DomainServiceWrapper {
	return &DomainValidationService{
		validator: validators.NewDomainValidator(),
	}
}

func (v *DomainValidationService) Wrap(inner DomainService) DomainService {
	v.inner = inner
	return v
}

func (v *DomainValidationService) check(ctx context.Context, obj any) error {
	if err := v.validator.Validate(ctx, obj); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func checkUUID(uuid string) error {
	if !utils.IsUUID(uuid) {
		return fmt.Errorf("%w: malformed uuid %q", ErrInvalidDataProvided, uuid)
	}
	return nil
}

func (v *DomainValidationService) CreateProfile(ctx context.Context, userID int64, in models.ProfileInput) (models.Profile, error) {
	if err := v.check(ctx, in); err != nil {
		return models.Profile{}, err
	}
	return v.inner.CreateProfile(ctx, userID, in)
}

func (v *DomainValidationService) UpdateProfile(ctx context.Context, userID int64, uuid string, patch models.ProfilePatch) (models.Profile, error) {
	if err := checkUUID(uuid); err != nil {
		return models.Profile{}, err
	}
	if err := v.check(ctx, patch); err != nil {
		return models.Profile{}, err
	}
	return v.inner.UpdateProfile(ctx, userID, uuid, patch)
}

func (v *DomainValidationService) DeleteProfile(ctx context.Context, userID int64, uuid string) error {
	if err := checkUUID(uuid); err != nil {
		return err
	}
	return v.inner.DeleteProfile(ctx, userID, uuid)
}

func (v *DomainValidationService) CreateCard(ctx context.Context, userID int64, in models.CardInput) (models.Card, error) {
	if err := v.check(ctx, in); err != nil {
		return models.Card{}, err
	}
	return v.inner.CreateCard(ctx, userID, in)
}

func (v *DomainValidationService) UpdateCard(ctx context.Context, userID int64, uuid string, patch models.CardPatch) (models.Card, error) {
	if err := checkUUID(uuid); err != nil {
		return models.Card{}, err
	}
	if err := v.check(ctx, patch); err != nil {
		return models.Card{}, err
	}
	return v.inner.UpdateCard(ctx, userID, uuid, patch)
}

func (v *DomainValidationService) DeleteCard(ctx context.Context, userID int64, uuid string) error {
	if err := checkUUID(uuid); err != nil {
		return err
	}
	return v.inner.DeleteCard(ctx, userID, uuid)
}

func (v *DomainValidationService) PutRelation(ctx context.Context, userID int64, in models.RelationInput) (models.ProfileRelation, error) {
	if err := v.check(ctx, in); err != nil {
		return models.ProfileRelation{}, err
	}
	return v.inner.PutRelation(ctx, userID, in)
}

func (v *DomainValidationService) DeleteRelation(ctx context.Context, userID int64, uuid string) error {
	if err := checkUUID(uuid); err != nil {
		return err
	}
	return v.inner.DeleteRelation(ctx, userID, uuid)
}

func (v *DomainValidationService) Subscribe(ctx context.Context, userID int64, in models.SubscriptionInput) (models.CardSubscription, error) {
	if err := v.check(ctx, in); err != nil {
		return models.CardSubscription{}, err
	}
	return v.inner.Subscribe(ctx, userID, in)
}

func (v *DomainValidationService) Unsubscribe(ctx context.Context, userID int64, uuid string) error {
	if err := checkUUID(uuid); err != nil {
		return err
	}
	return v.inner.Unsubscribe(ctx, userID, uuid)
}

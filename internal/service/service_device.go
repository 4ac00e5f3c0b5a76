package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/internal/store"
	"github.com/MKhiriev/go-db-journal/internal/validators"
	"github.com/MKhiriev/go-db-journal/models"
)

type deviceService struct {
	devices   store.DeviceRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewDeviceService(devices store.DeviceRepository, logger *logger.Logger) DeviceService {
	return &deviceService{
		devices:   devices,
		validator: validators.NewDomainValidator(),
		logger:    logger,
	}
}

// RegisterDevice implements DeviceService. Registering a token again
// reassigns it to userID and clears any revocation.
func (d *deviceService) RegisterDevice(ctx context.Context, userID int64, in models.DeviceInput) error {
	if err := d.validator.Validate(ctx, in); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return d.devices.RegisterDevice(ctx, models.DeviceSession{
		UserID:      userID,
		DeviceToken: strings.TrimSpace(in.DeviceToken),
		Platform:    strings.ToLower(strings.TrimSpace(in.Platform)),
	})
}

func (d *deviceService) RevokeDevice(ctx context.Context, userID int64, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidDeviceToken)
	}
	return d.devices.RevokeDevice(ctx, userID, token)
}

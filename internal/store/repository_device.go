package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/models"
)

type deviceRepository struct {
	*DB
	logger *logger.Logger
}

// NewDeviceRepository constructs a [DeviceRepository] backed by db.
func NewDeviceRepository(db *DB, logger *logger.Logger) DeviceRepository {
	return &deviceRepository{
		DB:     db,
		logger: logger,
	}
}

// RegisterDevice stores the token for the user. A token that was registered
// before, by anyone, is moved to this user and reactivated.
func (d *deviceRepository) RegisterDevice(ctx context.Context, device models.DeviceSession) error {
	log := logger.FromContext(ctx)

	_, err := d.DB.ExecContext(ctx, upsertDeviceSession, device.UserID, device.DeviceToken, device.Platform)
	if err != nil {
		log.Err(err).
			Str("func", "deviceRepository.RegisterDevice").
			Int64("user_id", device.UserID).
			Msg("failed to register device")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (d *deviceRepository) RevokeDevice(ctx context.Context, userID int64, token string) error {
	log := logger.FromContext(ctx)

	result, err := d.DB.ExecContext(ctx, revokeDeviceSession, userID, token)
	if err != nil {
		log.Err(err).
			Str("func", "deviceRepository.RevokeDevice").
			Int64("user_id", userID).
			Msg("failed to revoke device")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRowNotFound
	}

	return nil
}

// ActiveDeviceTokens returns the distinct unrevoked tokens of userID.
func (d *deviceRepository) ActiveDeviceTokens(ctx context.Context, userID int64) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select("DISTINCT device_token").
		From("device_sessions").
		Where(sq.Eq{"user_id": userID, "revoked_at": nil}).
		OrderBy("device_token").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var tokens []string
	err = d.withRetry(ctx, func() error {
		rows, err := d.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		tokens, err = scanAll(rows, func(s rowScanner) (string, error) {
			var token string
			err := s.Scan(&token)
			return token, err
		})
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "deviceRepository.ActiveDeviceTokens").
			Int64("user_id", userID).
			Msg("failed to query device tokens")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return tokens, nil
}

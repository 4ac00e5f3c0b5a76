package notify

//go:generate mockgen -source=interfaces.go -destination=../mock/notify_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-db-journal/models"
)

// Pusher delivers a payload to a set of device tokens.
type Pusher interface {
	Push(ctx context.Context, tokens []string, payload models.PushPayload) error
}

// DeviceTokens lists the push targets registered for a user.
type DeviceTokens interface {
	ActiveDeviceTokens(ctx context.Context, userID int64) ([]string, error)
}

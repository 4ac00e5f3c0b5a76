package notify

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/internal/metrics"
	"github.com/MKhiriev/go-db-journal/models"
)

// Notifier pushes a snapshot's new hash to every active device of its owner.
type Notifier struct {
	devices DeviceTokens
	pusher  Pusher
	metrics *metrics.Metrics
}

func NewNotifier(devices DeviceTokens, pusher Pusher, m *metrics.Metrics) *Notifier {
	return &Notifier{devices: devices, pusher: pusher, metrics: m}
}

// Notify sends a [models.PushResourceDBSync] payload carrying hash. Users
// without devices are skipped.
func (n *Notifier) Notify(ctx context.Context, userID int64, hash string) error {
	log := logger.FromContext(ctx)

	tokens, err := n.devices.ActiveDeviceTokens(ctx, userID)
	if err != nil {
		n.metrics.Notifications.WithLabelValues(metrics.NotificationFailed).Inc()
		return fmt.Errorf("look up devices of user %d: %w", userID, err)
	}
	if len(tokens) == 0 {
		n.metrics.Notifications.WithLabelValues(metrics.NotificationSkipped).Inc()
		log.Debug().Str("func", "Notifier.Notify").Int64("user_id", userID).Msg("no devices registered")
		return nil
	}

	payload := models.PushPayload{Resource: models.PushResourceDBSync, ETag: hash}
	if err = n.pusher.Push(ctx, tokens, payload); err != nil {
		n.metrics.Notifications.WithLabelValues(metrics.NotificationFailed).Inc()
		return err
	}

	n.metrics.Notifications.WithLabelValues(metrics.NotificationSent).Inc()
	log.Info().Str("func", "Notifier.Notify").Int64("user_id", userID).Int("devices", len(tokens)).
		Str("hash", hash).Msg("snapshot change announced")
	return nil
}

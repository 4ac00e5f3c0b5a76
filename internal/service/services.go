package service

import (
	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/internal/store"
)

type Services struct {
	SyncService   SyncService
	DomainService DomainService
	DeviceService DeviceService
	HealthService HealthService
}

// NewServices wires the API services. Domain writes are validated before
// they reach the session-backed implementation.
func NewServices(
	storages *store.Storages,
	snapshots SnapshotStore,
	locker Locker,
	publisher Publisher,
	uuids UUIDGenerator,
	backends map[string]Pinger,
	logger *logger.Logger,
) *Services {
	domain := NewDomainValidationService().Wrap(
		NewDomainService(storages.Sessions, publisher, uuids, logger),
	)

	return &Services{
		SyncService:   NewSyncService(snapshots, locker, logger),
		DomainService: domain,
		DeviceService: NewDeviceService(storages.Devices, logger),
		HealthService: NewHealthService(backends, logger),
	}
}

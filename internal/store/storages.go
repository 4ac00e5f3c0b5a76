package store

import (
	"context"

	"github.com/MKhiriev/go-db-journal/internal/config"
	"github.com/MKhiriev/go-db-journal/internal/logger"
)

// Storages aggregates the repositories that share one Postgres connection.
type Storages struct {
	db *DB

	Graph    GraphRepository
	Devices  DeviceRepository
	Sessions SessionFactory
}

func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		db:       db,
		Graph:    NewGraphRepository(db, log),
		Devices:  NewDeviceRepository(db, log),
		Sessions: NewSessionFactory(db, log),
	}
}

func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storages) Close() error {
	return s.db.Close()
}

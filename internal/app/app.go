package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-db-journal/internal/config"
	"github.com/MKhiriev/go-db-journal/internal/coordination"
	"github.com/MKhiriev/go-db-journal/internal/journal"
	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/internal/metrics"
	"github.com/MKhiriev/go-db-journal/internal/notify"
	"github.com/MKhiriev/go-db-journal/internal/queue"
	"github.com/MKhiriev/go-db-journal/internal/service"
	"github.com/MKhiriev/go-db-journal/internal/snapshot"
	"github.com/MKhiriev/go-db-journal/internal/store"
	"github.com/MKhiriev/go-db-journal/internal/utils"
	"github.com/MKhiriev/go-db-journal/internal/worker"
	"github.com/redis/go-redis/v9"
)

// App holds the opened backends of one process.
type App struct {
	cfg    *config.StructuredConfig
	logger *logger.Logger

	Metrics   *metrics.Metrics
	Storages  *store.Storages
	Redis     *redis.Client
	Snapshots *snapshot.Store
	Locker    *coordination.RedisLocker
	Pending   *coordination.RedisPendingSet
	Queue     queue.Queue
}

// New opens every backend named by cfg. Backends opened before a failure
// are closed again.
func New(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (_ *App, err error) {
	a := &App{cfg: cfg, logger: log, Metrics: metrics.New()}
	defer func() {
		if err != nil {
			err = errors.Join(err, a.Close())
		}
	}()

	if a.Storages, err = store.NewStorages(ctx, cfg.Storage.DB, log); err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	a.Redis = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err = a.Redis.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	a.Locker = coordination.NewRedisLocker(a.Redis, cfg.Workers.LockTTL)
	a.Pending = coordination.NewRedisPendingSet(a.Redis, cfg.Workers.PendingTTL)

	backend, err := newSnapshotBackend(ctx, cfg.Storage.Snapshots)
	if err != nil {
		return nil, fmt.Errorf("open snapshot backend: %w", err)
	}
	a.Snapshots = snapshot.NewStore(backend, a.Storages.Graph, cfg.Storage.Snapshots.WorkDir, log)

	if a.Queue, err = newQueue(ctx, cfg.Queue, cfg.Workers.Concurrency, log); err != nil {
		return nil, fmt.Errorf("open journal queue: %w", err)
	}

	log.Info().
		Str("snapshot_backend", cfg.Storage.Snapshots.Backend).
		Str("queue_backend", cfg.Queue.Backend).
		Msg("backends opened")
	return a, nil
}

// Services wires the API services on top of the opened backends.
func (a *App) Services() *service.Services {
	publisher := journal.NewPublisher(a.Storages.Graph, a.Queue, a.Pending, a.Snapshots, a.Metrics)

	return service.NewServices(
		a.Storages,
		a.Snapshots,
		a.Locker,
		publisher,
		utils.NewUUIDGenerator(),
		a.Pingers(),
		a.logger,
	)
}

// Runtime builds the journal apply runtime consuming from the queue.
func (a *App) Runtime() (*worker.Runtime, error) {
	pusher, err := a.pusher()
	if err != nil {
		return nil, err
	}
	notifier := notify.NewNotifier(a.Storages.Devices, pusher, a.Metrics)

	return worker.NewRuntime(a.Queue, a.Queue, a.Snapshots, a.Locker, a.Pending, notifier, a.Metrics), nil
}

func (a *App) pusher() (notify.Pusher, error) {
	if a.cfg.Notify.PushURL == "" {
		a.logger.Warn().Msg("no push gateway configured, notifications are only logged")
		return notify.LogPusher{}, nil
	}
	pusher, err := notify.NewHTTPPusher(a.cfg.Notify)
	if err != nil {
		return nil, fmt.Errorf("create push gateway client: %w", err)
	}
	return pusher, nil
}

// Pingers returns the backends reported by the health check.
func (a *App) Pingers() map[string]service.Pinger {
	return map[string]service.Pinger{
		"postgres": a.Storages,
		"redis": service.PingFunc(func(ctx context.Context) error {
			return a.Redis.Ping(ctx).Err()
		}),
	}
}

// Close releases every opened backend.
func (a *App) Close() error {
	var errs []error
	if a.Queue != nil {
		errs = append(errs, a.Queue.Close())
	}
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.Storages != nil {
		errs = append(errs, a.Storages.Close())
	}
	return errors.Join(errs...)
}

package coordination

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/bsm/redislock"
)

const obtainBackoff = 50 * time.Millisecond

// Lock is a held snapshot lock.
type Lock interface {
	Release(ctx context.Context) error
}

// RedisLocker hands out exclusive locks keyed by snapshot identity. A held
// lock is refreshed in the background every ttl/3, so ttl only bounds how
// long a crashed holder blocks others.
type RedisLocker struct {
	client *redislock.Client
	ttl    time.Duration
}

func NewRedisLocker(client redislock.RedisClient, ttl time.Duration) *RedisLocker {
	return &RedisLocker{client: redislock.New(client), ttl: ttl}
}

// Obtain blocks until the lock for key is held or ctx ends, in which case
// it returns [ErrLockTimeout].
func (l *RedisLocker) Obtain(ctx context.Context, key string) (Lock, error) {
	opts := &redislock.Options{RetryStrategy: redislock.LinearBackoff(obtainBackoff)}

	for {
		lock, err := l.client.Obtain(ctx, key, l.ttl, opts)
		if err == nil {
			return l.hold(ctx, key, lock), nil
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLockTimeout, key, ctx.Err())
		}
		// without a caller deadline redislock gives up after ttl
		if errors.Is(err, redislock.ErrNotObtained) {
			continue
		}
		return nil, fmt.Errorf("obtain lock %s: %w", key, err)
	}
}

func (l *RedisLocker) hold(ctx context.Context, key string, lock *redislock.Lock) *heldLock {
	refreshCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	h := &heldLock{key: key, lock: lock, cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(h.done)

		ticker := time.NewTicker(l.ttl / 3)
		defer ticker.Stop()

		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-ticker.C:
				if err := lock.Refresh(refreshCtx, l.ttl, nil); err != nil && refreshCtx.Err() == nil {
					logger.FromContext(ctx).Warn().Err(err).
						Str("func", "RedisLocker.hold").
						Str("lock", key).
						Msg("failed to refresh snapshot lock")
				}
			}
		}
	}()

	return h
}

type heldLock struct {
	key    string
	lock   *redislock.Lock
	cancel context.CancelFunc
	done   chan struct{}
}

// Release stops the refresher and frees the lock. A lock that expired in
// the meantime is logged, not returned as an error.
func (h *heldLock) Release(ctx context.Context) error {
	h.cancel()
	<-h.done

	err := h.lock.Release(ctx)
	if errors.Is(err, redislock.ErrLockNotHeld) {
		logger.FromContext(ctx).Warn().
			Str("func", "heldLock.Release").
			Str("lock", h.key).
			Msg("snapshot lock expired before release")
		return nil
	}
	if err != nil {
		return fmt.Errorf("release lock %s: %w", h.key, err)
	}
	return nil
}

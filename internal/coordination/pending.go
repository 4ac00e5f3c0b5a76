package coordination

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pendingSuffix = ":TASK_SETS"

// PendingKey is the Redis key of the pending set of a snapshot identity.
func PendingKey(identity string) string {
	return identity + pendingSuffix
}

// RedisPendingSet tracks in-flight task ids per snapshot. Every write
// refreshes the key's expiry so ids leaked by a crashed worker disappear
// after ttl.
type RedisPendingSet struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisPendingSet(client redis.Cmdable, ttl time.Duration) *RedisPendingSet {
	return &RedisPendingSet{client: client, ttl: ttl}
}

func (p *RedisPendingSet) Add(ctx context.Context, identity, taskID string) error {
	key := PendingKey(identity)
	_, err := p.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, key, taskID)
		pipe.Expire(ctx, key, p.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("add %s to %s: %w", taskID, key, err)
	}
	return nil
}

// Remove drops taskID and reports whether the set is now empty. Both steps
// run in one transaction so exactly one of two racing removers sees the
// set drain.
func (p *RedisPendingSet) Remove(ctx context.Context, identity, taskID string) (bool, error) {
	key := PendingKey(identity)

	var exists *redis.IntCmd
	_, err := p.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SRem(ctx, key, taskID)
		exists = pipe.Exists(ctx, key)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("remove %s from %s: %w", taskID, key, err)
	}
	return exists.Val() == 0, nil
}

// Size returns the number of pending task ids of identity.
func (p *RedisPendingSet) Size(ctx context.Context, identity string) (int64, error) {
	return p.client.SCard(ctx, PendingKey(identity)).Result()
}

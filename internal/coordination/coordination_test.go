package coordination

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// ── RedisPendingSet ─────────────────────────────────────────────────────────

func TestRedisPendingSet_AddRemove(t *testing.T) {
	mr, client := newTestRedis(t)
	set := NewRedisPendingSet(client, 10*time.Minute)
	ctx := testContext()

	require.NoError(t, set.Add(ctx, "snap/1", "t1"))
	require.NoError(t, set.Add(ctx, "snap/1", "t2"))

	assert.True(t, mr.Exists("snap/1:TASK_SETS"))
	assert.Equal(t, 10*time.Minute, mr.TTL("snap/1:TASK_SETS"))

	n, err := set.Size(ctx, "snap/1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	drained, err := set.Remove(ctx, "snap/1", "t1")
	require.NoError(t, err)
	assert.False(t, drained)

	drained, err = set.Remove(ctx, "snap/1", "t2")
	require.NoError(t, err)
	assert.True(t, drained)
	assert.False(t, mr.Exists("snap/1:TASK_SETS"))
}

func TestRedisPendingSet_RemoveUnknownOnEmptySet(t *testing.T) {
	_, client := newTestRedis(t)
	set := NewRedisPendingSet(client, time.Minute)

	drained, err := set.Remove(testContext(), "snap/2", "ghost")
	require.NoError(t, err)
	assert.True(t, drained)
}

func TestRedisPendingSet_Expires(t *testing.T) {
	mr, client := newTestRedis(t)
	set := NewRedisPendingSet(client, time.Minute)
	ctx := testContext()

	require.NoError(t, set.Add(ctx, "snap/3", "leaked"))
	mr.FastForward(2 * time.Minute)

	n, err := set.Size(ctx, "snap/3")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRedisPendingSet_Unavailable(t *testing.T) {
	mr, client := newTestRedis(t)
	set := NewRedisPendingSet(client, time.Minute)
	mr.Close()

	assert.Error(t, set.Add(testContext(), "snap/1", "t1"))
	_, err := set.Remove(testContext(), "snap/1", "t1")
	assert.Error(t, err)
}

// ── RedisLocker ─────────────────────────────────────────────────────────────

func TestRedisLocker_ObtainRelease(t *testing.T) {
	mr, client := newTestRedis(t)
	locker := NewRedisLocker(client, time.Second)
	ctx := testContext()

	lock, err := locker.Obtain(ctx, "snap/1")
	require.NoError(t, err)
	assert.True(t, mr.Exists("snap/1"))

	require.NoError(t, lock.Release(ctx))
	assert.False(t, mr.Exists("snap/1"))
}

func TestRedisLocker_BlocksUntilReleased(t *testing.T) {
	_, client := newTestRedis(t)
	locker := NewRedisLocker(client, time.Second)
	ctx := testContext()

	first, err := locker.Obtain(ctx, "snap/1")
	require.NoError(t, err)

	var (
		wg       sync.WaitGroup
		obtained time.Time
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		second, err := locker.Obtain(ctx, "snap/1")
		if !assert.NoError(t, err) {
			return
		}
		obtained = time.Now()
		assert.NoError(t, second.Release(ctx))
	}()

	time.Sleep(200 * time.Millisecond)
	released := time.Now()
	require.NoError(t, first.Release(ctx))
	wg.Wait()

	assert.False(t, obtained.IsZero())
	assert.True(t, obtained.After(released))
}

func TestRedisLocker_DifferentKeysDoNotBlock(t *testing.T) {
	_, client := newTestRedis(t)
	locker := NewRedisLocker(client, time.Second)
	ctx := testContext()

	a, err := locker.Obtain(ctx, "snap/1")
	require.NoError(t, err)
	b, err := locker.Obtain(ctx, "snap/2")
	require.NoError(t, err)

	require.NoError(t, a.Release(ctx))
	require.NoError(t, b.Release(ctx))
}

func TestRedisLocker_Timeout(t *testing.T) {
	_, client := newTestRedis(t)
	locker := NewRedisLocker(client, 5*time.Second)
	ctx := testContext()

	held, err := locker.Obtain(ctx, "snap/1")
	require.NoError(t, err)
	defer held.Release(ctx)

	waitCtx, cancel := context.WithTimeout(ctx, 150*time.Millisecond)
	defer cancel()

	_, err = locker.Obtain(waitCtx, "snap/1")
	assert.ErrorIs(t, err, ErrLockTimeout)
}

func TestRedisLocker_ReleaseAfterExpiry(t *testing.T) {
	mr, client := newTestRedis(t)
	locker := NewRedisLocker(client, time.Minute)
	ctx := testContext()

	lock, err := locker.Obtain(ctx, "snap/1")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)
	assert.NoError(t, lock.Release(ctx))
}

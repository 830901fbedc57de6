package myredis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"mysessions/domain"
	"mysessions/helpers"
	"mysessions/service"

	"github.com/go-kit/log"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRedisAddr = "redis://localhost:6379"
const testPrefix = "mysessions-test:instance"

// setupTestRedis connects to a local redis and skips the test when none is running.
func setupTestRedis(t *testing.T) (redis.UniversalClient, func()) {
	client, err := NewRedisUniversalClient(testRedisAddr, func(o *redis.Options) {
		o.DialTimeout = 500 * time.Millisecond
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("redis not available at %s: %v", testRedisAddr, err)
	}

	purge := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		keys, _ := client.Keys(ctx, testPrefix+":*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
	}
	purge()

	return client, func() {
		purge()
		client.Close()
	}
}

func newTestCache(client redis.UniversalClient) *redisCache[domain.InstanceInfo] {
	return NewCache[domain.InstanceInfo](client, testPrefix, marshalJSON[domain.InstanceInfo], unmarshalJSON[domain.InstanceInfo])
}

func TestNewCache_Panics(t *testing.T) {
	client, err := NewRedisUniversalClient(testRedisAddr)
	require.NoError(t, err)
	defer client.Close()

	assert.PanicsWithValue(t, "adapters.myredis.cache.go: redis client is required", func() {
		NewCache[domain.InstanceInfo](nil, testPrefix, marshalJSON[domain.InstanceInfo], unmarshalJSON[domain.InstanceInfo])
	})
	assert.PanicsWithValue(t, "adapters.myredis.cache.go: prefix is required", func() {
		NewCache[domain.InstanceInfo](client, "", marshalJSON[domain.InstanceInfo], unmarshalJSON[domain.InstanceInfo])
	})
	assert.PanicsWithValue(t, "adapters.myredis.cache.go: unmarshal is required", func() {
		NewCache[domain.InstanceInfo](client, testPrefix, marshalJSON[domain.InstanceInfo], nil)
	})
	assert.NotNil(t, NewStatusCache(client))
}

func TestCache_WriteValue(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := newTestCache(client)
	info := domain.InstanceInfo{InstanceID: "a1b2c3d4", State: domain.StateReady, Profile: "15551234567", UpdatedAt: helpers.TestNow()}

	t.Run("success", func(t *testing.T) {
		require.NoError(t, cache.WriteValue(ctx, info.InstanceID, info, 60000))

		items, err := cache.ListAllValues(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, info.InstanceID, items[0].InstanceID)
		assert.Equal(t, domain.StateReady, items[0].State)
		assert.Equal(t, "15551234567", items[0].Profile)
		assert.True(t, info.UpdatedAt.Equal(items[0].UpdatedAt))

		ttl, err := client.TTL(ctx, testPrefix+":"+info.InstanceID).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, 50*time.Second)
	})

	t.Run("when Redis write fails returns internal_server_error", func(t *testing.T) {
		closedClient, err := NewRedisUniversalClient(testRedisAddr)
		require.NoError(t, err)
		closedClient.Close()
		cacheClosed := newTestCache(closedClient)

		err = cacheClosed.WriteValue(ctx, "x", info, 60000)
		require.Error(t, err)
		assert.True(t, service.IsInternalServerError(err))
	})
}

func TestCache_DeleteValue(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := newTestCache(client)
	info := domain.InstanceInfo{InstanceID: "inst-del", State: domain.StateAwaitingPairing}
	require.NoError(t, cache.WriteValue(ctx, info.InstanceID, info, 60000))

	require.NoError(t, cache.DeleteValue(ctx, info.InstanceID))

	items, err := cache.ListAllValues(ctx)
	require.Error(t, err)
	assert.True(t, service.IsEntityNotFoundError(err))
	assert.Nil(t, items)
}

func TestCache_ListAllValues(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := newTestCache(client)

	t.Run("empty cache returns entity not found", func(t *testing.T) {
		items, err := cache.ListAllValues(ctx)
		require.Error(t, err)
		assert.True(t, service.IsEntityNotFoundError(err))
		assert.Nil(t, items)
	})

	t.Run("invalid JSON is skipped", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, testPrefix+":badjson", "invalid json", 0).Err())
		require.NoError(t, cache.WriteValue(ctx, "e5f6a7b8", domain.InstanceInfo{InstanceID: "e5f6a7b8", State: domain.StateInitializing}, 60000))

		items, err := cache.ListAllValues(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "e5f6a7b8", items[0].InstanceID)
	})
}

func TestCache_ListAllValues_ManyKeys(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := newTestCache(client)
	const n = 2*scanBatch + 7
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("%08x", i)
		require.NoError(t, cache.WriteValue(ctx, id, domain.InstanceInfo{InstanceID: id, State: domain.StateReady}, 60000))
	}

	items, err := cache.ListAllValues(ctx)
	require.NoError(t, err)
	assert.Len(t, items, n)
}

func TestStatusMirror_WithRedis(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	mirror := service.NewStatusMirror(newTestCache(client), time.Minute, log.NewNopLogger())
	mirror.Publish(ctx, domain.InstanceInfo{InstanceID: "a1b2c3d4", State: domain.StateAwaitingPairing, PairingArtifact: "data:image/png;base64,AAA"})

	items, err := newTestCache(client).ListAllValues(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Empty(t, items[0].PairingArtifact)

	mirror.Remove(ctx, "a1b2c3d4")
	_, err = newTestCache(client).ListAllValues(ctx)
	assert.True(t, service.IsEntityNotFoundError(err))
}

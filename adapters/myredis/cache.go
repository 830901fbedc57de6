package myredis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mysessions/domain"
	"mysessions/helpers"
	"mysessions/service"

	"github.com/go-redis/redis/v8"
)

// StatusPrefix is the key prefix of mirrored instance status snapshots.
const StatusPrefix = "mysessions:instance"

// scanBatch is both the SCAN count hint and the MGET batch size.
const scanBatch = 100

type redisCache[T any] struct {
	client    redis.UniversalClient
	prefix    string
	marshal   func(T) ([]byte, error)
	unmarshal func([]byte) (T, error)
}

// NewCache creates redis implementation of generic cache interface.
func NewCache[T any](client redis.UniversalClient, prefix string, marshal func(T) ([]byte, error), unmarshal func([]byte) (T, error)) *redisCache[T] {
	return &redisCache[T]{
		client:    helpers.NilPanic(client, "adapters.myredis.cache.go: redis client is required"),
		prefix:    helpers.StrPanic(prefix, "adapters.myredis.cache.go: prefix is required"),
		marshal:   helpers.NilPanic(marshal, "adapters.myredis.cache.go: marshal is required"),
		unmarshal: helpers.NilPanic(unmarshal, "adapters.myredis.cache.go: unmarshal is required"),
	}
}

// NewStatusCache creates the JSON cache of instance status snapshots, keyed by instance id.
func NewStatusCache(client redis.UniversalClient) *redisCache[domain.InstanceInfo] {
	return NewCache[domain.InstanceInfo](client, StatusPrefix, marshalJSON[domain.InstanceInfo], unmarshalJSON[domain.InstanceInfo])
}

func (r *redisCache[T]) WriteValue(ctx context.Context, key string, item T, ttlMs int) error {
	b, err := r.marshal(item)
	if err != nil {
		return service.NewInternalServerError("Redis marshal item error", fmt.Errorf("marshal %T failed, err: %w", item, err))
	}
	if err := r.client.Set(ctx, r.key(key), b, time.Duration(ttlMs)*time.Millisecond).Err(); err != nil {
		return service.NewInternalServerError("Redis write key error", fmt.Errorf("SET %s failed, err: %w", r.key(key), err))
	}
	return nil
}

func (r *redisCache[T]) DeleteValue(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return service.NewInternalServerError("Redis delete key error", fmt.Errorf("DEL %s failed, err: %w", r.key(key), err))
	}
	return nil
}

// ListAllValues scans the keys under the prefix and fetches them with batched MGETs.
// Entries that expired between scan and fetch, or fail to decode, are skipped.
func (r *redisCache[T]) ListAllValues(ctx context.Context) ([]T, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, r.key("*"), scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, service.NewInternalServerError("Redis scan keys error", fmt.Errorf("SCAN %s failed, err: %w", r.key("*"), err))
	}

	var items []T
	for start := 0; start < len(keys); start += scanBatch {
		end := start + scanBatch
		if end > len(keys) {
			end = len(keys)
		}
		values, err := r.client.MGet(ctx, keys[start:end]...).Result()
		if err != nil {
			return nil, service.NewInternalServerError("Redis read keys error", fmt.Errorf("MGET of %d keys failed, err: %w", end-start, err))
		}
		for _, v := range values {
			s, ok := v.(string)
			if !ok {
				continue
			}
			item, err := r.unmarshal([]byte(s))
			if err != nil {
				continue
			}
			items = append(items, item)
		}
	}

	if len(items) == 0 {
		return nil, service.NewEntityNotFoundError("No cached values under "+r.prefix, nil)
	}
	return items, nil
}

func (r *redisCache[T]) key(key string) string {
	return r.prefix + ":" + key
}

func marshalJSON[T any](v T) ([]byte, error) {
	return json.Marshal(v)
}

func unmarshalJSON[T any](b []byte) (T, error) {
	var v T
	err := json.Unmarshal(b, &v)
	return v, err
}

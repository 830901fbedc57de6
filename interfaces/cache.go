package interfaces

import "context"

// Cache is a shared TTL store of JSON values keyed by string. The status mirror keeps one
// InstanceInfo per instance id in it so every process sharing the cache can list the
// instances served across the fleet.
//
//go:generate moq -stub -out mock/cache.go -pkg mock . Cache
type Cache[T any] interface {
	// WriteValue stores item under key for ttlMs milliseconds, replacing any previous value.
	// Fails with internal_server_error when the value cannot be encoded or stored.
	WriteValue(ctx context.Context, key string, item T, ttlMs int) error

	// ListAllValues returns every live value. Keys whose value expired or cannot be
	// decoded are skipped. An empty cache yields entity_not_found; a storage error
	// yields internal_server_error.
	ListAllValues(ctx context.Context) ([]T, error)

	// DeleteValue removes key. Deleting a missing key is not an error.
	DeleteValue(ctx context.Context, key string) error
}

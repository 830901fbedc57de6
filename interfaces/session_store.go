package interfaces

import "context"

// SessionStore keeps the opaque credential blob of every instance in durable storage.
// Keys are namespaced per instance id so stores for different ids never collide.
//
//go:generate moq -stub -out mock/session_store.go -pkg mock . SessionStore
type SessionStore interface {
	// Save writes the blob for the instance, replacing any previous one.
	// Returns nil on success; store_unavailable on backend error.
	Save(ctx context.Context, instanceID string, blob []byte) error

	// Load returns the blob for the instance.
	// Returns entity_not_found when no blob is stored; store_unavailable on backend error.
	Load(ctx context.Context, instanceID string) ([]byte, error)

	// Exists reports whether a blob is stored for the instance.
	// Returns store_unavailable on backend error.
	Exists(ctx context.Context, instanceID string) (bool, error)

	// Delete removes the blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, instanceID string) error

	// List returns the ids of all instances that have a stored blob. An empty
	// store yields an empty slice and no error.
	List(ctx context.Context) ([]string, error)
}

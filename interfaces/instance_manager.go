package interfaces

import (
	"context"

	"mysessions/domain"
)

// InstanceManager is the lifecycle API of the orchestrator served over HTTP.
//
//go:generate moq -stub -out mock/instance_manager.go -pkg mock . InstanceManager
type InstanceManager interface {
	// CreateInstance creates an instance and waits for its first pairing artifact.
	// Returns pairing_timeout when none arrives in time.
	CreateInstance(ctx context.Context) (domain.InstanceInfo, error)

	// SendMessage delivers body to target ("<number>" or a full chat id) from the instance.
	// Returns entity_not_found for an unknown id and delivery_failed when the engine refuses.
	SendMessage(ctx context.Context, instanceID string, target string, body string) (domain.DeliveryResult, error)

	GetDetails(instanceID string) (domain.InstanceInfo, error)
	ListInstances() []domain.InstanceInfo
	RestartInstance(instanceID string) error
	TerminateInstance(instanceID string) error
	Health() string

	// HandleEngineEvent queues a lifecycle event reported by the engine for the instance.
	HandleEngineEvent(instanceID string, event domain.Event) error
	// TriggerDrain starts a drain pass for a ready instance.
	TriggerDrain(instanceID string) error
	// MirroredStatuses returns the statuses of all instances known to the shared status cache.
	MirroredStatuses(ctx context.Context) ([]domain.InstanceInfo, error)

	SaveSession(ctx context.Context, instanceID string, blob []byte) error
	LoadSession(ctx context.Context, instanceID string) ([]byte, error)
	SessionExists(ctx context.Context, instanceID string) (bool, error)
	DeleteSession(ctx context.Context, instanceID string) error
}

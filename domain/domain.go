package domain

import "time"

// State is the lifecycle state of a messaging instance.
type State string

const (
	StateInitializing    State = "initializing"
	StateAwaitingPairing State = "awaiting_pairing"
	StateAuthenticated   State = "authenticated"
	StateReady           State = "ready"
	StateDisconnected    State = "disconnected"
	StateFailed          State = "failed"
	StateTerminated      State = "terminated"
)

// EventKind names a lifecycle event emitted by the protocol engine.
type EventKind string

const (
	// EventPairingChallenge carries a fresh pairing challenge (QR payload) in Event.Challenge.
	EventPairingChallenge EventKind = "qr"
	EventAuthenticated    EventKind = "authenticated"
	// EventReady carries the resolved profile in Event.Profile (may be empty).
	EventReady EventKind = "ready"
	// EventSessionPersisted confirms a durable write of the credential blob.
	EventSessionPersisted EventKind = "remote_session_saved"
	EventDisconnected     EventKind = "disconnected"
	EventAuthFailure      EventKind = "auth_failure"
)

// Event is one lifecycle notification for an instance.
type Event struct {
	Kind      EventKind
	Challenge string
	Profile   string
	Reason    string
}

// InstanceInfo is a point-in-time snapshot of an instance held by the registry.
// Profile is empty until the instance has been ready at least once.
type InstanceInfo struct {
	InstanceID      string    `json:"instance_id"`
	State           State     `json:"state"`
	Profile         string    `json:"profile,omitempty"`
	PairingArtifact string    `json:"pairing_artifact,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// QueueMessage is a raw message received from the work queue.
type QueueMessage struct {
	MessageID     string
	ReceiptHandle string
	Body          string
}

// JobPayload is the JSON body of an outbound-message job.
type JobPayload struct {
	PhoneNumber    string `json:"phoneNumber"`
	MessageBody    string `json:"messageBody"`
	SenderInstance string `json:"senderInstance"`
}

// ReceiveOptions controls one receive call against the work queue.
type ReceiveOptions struct {
	MaxMessages       int
	VisibilityTimeout time.Duration
	WaitTime          time.Duration
}

// DeliveryResult is what the engine reports for a dispatched message.
type DeliveryResult struct {
	MessageID string `json:"message_id,omitempty"`
	ChatID    string `json:"chat_id"`
}

// CompletionReason tells a completion policy why it is being notified.
type CompletionReason string

const (
	CompletionSessionPersisted CompletionReason = "session_persisted"
	CompletionQueueDrained     CompletionReason = "queue_drained"
)

// Completion is a run-to-completion signal for one instance.
// PendingWork is true while a drain pass for the instance is still running.
// FirstPass is true when the signal comes from the instance's first drain pass.
type Completion struct {
	InstanceID  string
	Reason      CompletionReason
	PendingWork bool
	FirstPass   bool
}

package interfaces

import (
	"context"

	"mysessions/domain"
)

// EventSink receives lifecycle events emitted by an engine, in emission order.
type EventSink func(event domain.Event)

// Engine is the protocol-automation client behind one instance. The orchestrator
// owns it exclusively and destroys it exactly once.
//
//go:generate moq -stub -out mock/engine.go -pkg mock . Engine
type Engine interface {
	// Initialize starts (or restarts) the client. It loads remote credentials when they
	// exist and otherwise emits a pairing challenge.
	Initialize(ctx context.Context) error

	// SendMessage delivers body to chatID.
	SendMessage(ctx context.Context, chatID string, body string) (domain.DeliveryResult, error)

	// Destroy releases the client.
	Destroy(ctx context.Context) error
}

// EngineFactory builds a fresh engine for an instance id. Events emitted by the
// engine must be passed to sink.
//
//go:generate moq -stub -out mock/engine_factory.go -pkg mock . EngineFactory
type EngineFactory interface {
	NewEngine(instanceID string, sink EventSink) (Engine, error)
}

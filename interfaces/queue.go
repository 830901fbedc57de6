package interfaces

import (
	"context"

	"mysessions/domain"
)

// Queue is the shared work queue of outbound-message jobs.
//
//go:generate moq -stub -out mock/queue.go -pkg mock . Queue
type Queue interface {
	// Receive long-polls for up to opts.MaxMessages messages. Received messages stay
	// invisible to other consumers for opts.VisibilityTimeout.
	// Returns an empty slice when the queue has nothing visible; queue_unavailable on backend error.
	Receive(ctx context.Context, opts domain.ReceiveOptions) ([]domain.QueueMessage, error)

	// Delete acknowledges a message so it is never redelivered.
	Delete(ctx context.Context, receiptHandle string) error
}

package mysqs

import (
	"context"
	"fmt"
	"time"

	"mysessions/domain"
	"mysessions/helpers"
	"mysessions/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// Receive limits enforced by SQS.
const (
	maxBatch   = 10
	maxWait    = 20 * time.Second
	maxVisible = 12 * time.Hour
)

// SQSAPI is the subset of *sqs.Client used by the queue.
type SQSAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

type queue struct {
	client   SQSAPI
	queueURL string
}

// NewQueue creates an SQS implementation of interfaces.Queue. Panics on nil client or empty queueURL.
func NewQueue(client SQSAPI, queueURL string) *queue {
	return &queue{
		client:   helpers.NilPanic(client, "adapters.mysqs.queue.go: sqs client is required"),
		queueURL: helpers.StrPanic(queueURL, "adapters.mysqs.queue.go: queue url is required"),
	}
}

// Receive long-polls for up to opts.MaxMessages messages. Options are clamped to the SQS limits.
func (q *queue) Receive(ctx context.Context, opts domain.ReceiveOptions) ([]domain.QueueMessage, error) {
	out, err := q.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(q.queueURL),
		MaxNumberOfMessages: int32(clamp(opts.MaxMessages, 1, maxBatch)),
		VisibilityTimeout:   int32(clampDuration(opts.VisibilityTimeout, 0, maxVisible) / time.Second),
		WaitTimeSeconds:     int32(clampDuration(opts.WaitTime, 0, maxWait) / time.Second),
	})
	if err != nil {
		return nil, service.NewQueueUnavailableError("Failed to receive messages", fmt.Errorf("receive from %s: %w", q.queueURL, err))
	}

	messages := make([]domain.QueueMessage, 0, len(out.Messages))
	for _, m := range out.Messages {
		messages = append(messages, domain.QueueMessage{
			MessageID:     aws.ToString(m.MessageId),
			ReceiptHandle: aws.ToString(m.ReceiptHandle),
			Body:          aws.ToString(m.Body),
		})
	}
	return messages, nil
}

// Delete acknowledges a processed message.
func (q *queue) Delete(ctx context.Context, receiptHandle string) error {
	_, err := q.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(q.queueURL),
		ReceiptHandle: aws.String(receiptHandle),
	})
	if err != nil {
		return service.NewQueueUnavailableError("Failed to delete message", fmt.Errorf("delete from %s: %w", q.queueURL, err))
	}
	return nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func clampDuration(v, lo, hi time.Duration) time.Duration {
	return max(lo, min(v, hi))
}

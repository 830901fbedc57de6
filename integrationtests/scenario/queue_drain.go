package scenario

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mysessions/domain"
	"mysessions/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

const scenarioQueueDrain = "queue_drain"

func init() {
	Register(scenarioQueueDrain, runQueueDrain)
}

// newSQSClient addresses the emulated queue with dummy credentials.
func newSQSClient(ctx context.Context, cfg *Config) (*sqs.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("test", "test", "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return sqs.NewFromConfig(awsCfg, func(o *sqs.Options) {
		if cfg.AWSEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWSEndpoint)
		}
	}), nil
}

func enqueue(ctx context.Context, q *sqs.Client, queueURL string, job domain.JobPayload) error {
	b, err := json.Marshal(job)
	if err != nil {
		return err
	}
	_, err = q.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(queueURL),
		MessageBody: aws.String(string(b)),
	})
	return err
}

func runQueueDrain(ctx context.Context, cfg *Config) error {
	if cfg.QueueURL == "" {
		return fmt.Errorf("queue url is required for %s", scenarioQueueDrain)
	}
	ctx, cancel := context.WithTimeout(ctx, 90*time.Second)
	defer cancel()

	client := NewClient(cfg)
	q, err := newSQSClient(ctx, cfg)
	if err != nil {
		return err
	}

	// 1. Jobs queued before any instance is ready
	stamp := time.Now().Format("150405.000")
	jobs := []domain.JobPayload{
		{PhoneNumber: testNumber, MessageBody: "queued one " + stamp},
		{PhoneNumber: "15550002222", MessageBody: "queued two " + stamp},
	}
	for _, job := range jobs {
		if err := enqueue(ctx, q, cfg.QueueURL, job); err != nil {
			return fmt.Errorf("enqueue: %w", err)
		}
	}

	// 2. Becoming ready starts a drain pass
	id, err := createReady(ctx, client, testProfile)
	if err != nil {
		return err
	}
	defer client.TerminateInstance(context.Background(), id)

	if err := waitDelivered(ctx, client, id, jobs); err != nil {
		return err
	}

	// 3. A job queued later is picked up by an explicit drain trigger
	late := domain.JobPayload{PhoneNumber: testNumber, MessageBody: "queued late " + stamp}
	if err := enqueue(ctx, q, cfg.QueueURL, late); err != nil {
		return fmt.Errorf("enqueue: %w", err)
	}
	if err := client.Drain(ctx, id); err != nil {
		return fmt.Errorf("drain: %w", err)
	}
	return waitDelivered(ctx, client, id, append(jobs, late))
}

func waitDelivered(ctx context.Context, client *Client, id string, jobs []domain.JobPayload) error {
	return waitFor(ctx, fmt.Sprintf("%d queued jobs to be delivered", len(jobs)), func(ctx context.Context) (bool, error) {
		msgs, err := client.EngineMessages(ctx, id)
		if err != nil {
			return false, err
		}
		for _, job := range jobs {
			found := false
			for _, m := range msgs {
				if m.Body == job.MessageBody && m.ChatID == service.ChatID(job.PhoneNumber) {
					found = true
					break
				}
			}
			if !found {
				return false, nil
			}
		}
		return true, nil
	})
}

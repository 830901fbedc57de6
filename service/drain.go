package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"mysessions/domain"
	"mysessions/helpers"
	"mysessions/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Receive defaults used by the drain loop.
const (
	DefaultMaxBatch          = 10
	DefaultVisibilityTimeout = 30 * time.Second
	DefaultPollWait          = 5 * time.Second
)

// chatSuffix turns a phone number into an individual chat address.
const chatSuffix = "@c.us"

// ChatID returns the chat address for a target. Targets that already carry a domain part
// (e.g. group chats) are returned unchanged.
func ChatID(target string) string {
	target = strings.TrimSpace(target)
	if strings.Contains(target, "@") {
		return target
	}
	return target + chatSuffix
}

// ParseJob decodes a queue message body into a job payload.
func ParseJob(body string) (domain.JobPayload, error) {
	var p domain.JobPayload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return p, NewBadParameterError("invalid job payload", err)
	}
	if strings.TrimSpace(p.PhoneNumber) == "" {
		return p, NewBadParameterError("job payload phoneNumber is required", nil)
	}
	return p, nil
}

// DispatchFunc delivers one message through an instance's engine.
type DispatchFunc func(ctx context.Context, chatID string, body string) error

// DrainStats summarises one drain pass.
type DrainStats struct {
	Receives  int
	Received  int
	Delivered int
	Failed    int
	Skipped   int
}

// Drainer empties the shared work queue on behalf of one ready instance.
type Drainer struct {
	queue         interfaces.Queue
	opts          domain.ReceiveOptions
	routeBySender bool
	logger        log.Logger
}

// NewDrainer creates a drainer. Zero receive options fall back to the defaults.
// With routeBySender set, jobs whose senderInstance names another instance are left on the
// queue for that instance; otherwise any ready instance dispatches any job.
// Panics on nil queue or logger.
func NewDrainer(queue interfaces.Queue, opts domain.ReceiveOptions, routeBySender bool, logger log.Logger) *Drainer {
	if opts.MaxMessages <= 0 || opts.MaxMessages > DefaultMaxBatch {
		opts.MaxMessages = DefaultMaxBatch
	}
	opts.VisibilityTimeout = helpers.DurationOr(opts.VisibilityTimeout, DefaultVisibilityTimeout)
	if opts.WaitTime < 0 {
		opts.WaitTime = DefaultPollWait
	}
	return &Drainer{
		queue:         helpers.NilPanic(queue, "service.drain.go: queue is required"),
		opts:          opts,
		routeBySender: routeBySender,
		logger:        log.With(helpers.NilPanic(logger, "service.drain.go: logger is required"), "component", "drainer"),
	}
}

// Drain receives batches until the queue reports empty, dispatching each job and
// acknowledging it only when dispatch succeeded. Failed jobs stay unacknowledged and
// reappear after the visibility timeout. The pass stops early, without error, as soon as
// ready reports false. A receive failure aborts the pass with queue_unavailable.
func (d *Drainer) Drain(ctx context.Context, instanceID string, dispatch DispatchFunc, ready func() bool) (DrainStats, error) {
	var stats DrainStats
	logger := log.With(d.logger, "instance_id", instanceID)

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if !ready() {
			level.Info(logger).Log("msg", "Instance no longer ready, stopping drain")
			return stats, nil
		}

		messages, err := d.queue.Receive(ctx, d.opts)
		stats.Receives++
		if err != nil {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}
			return stats, NewQueueUnavailableError("Failed to receive messages from queue", err)
		}
		if len(messages) == 0 {
			level.Info(logger).Log("msg", "No more messages in the queue", "delivered", stats.Delivered, "failed", stats.Failed)
			return stats, nil
		}
		stats.Received += len(messages)

		for _, m := range messages {
			if !ready() {
				return stats, nil
			}
			d.process(ctx, logger, instanceID, m, dispatch, &stats)
		}
	}
}

func (d *Drainer) process(ctx context.Context, logger log.Logger, instanceID string, m domain.QueueMessage, dispatch DispatchFunc, stats *DrainStats) {
	logger = log.With(logger, "message_id", m.MessageID)

	job, err := ParseJob(m.Body)
	if err != nil {
		stats.Failed++
		level.Warn(logger).Log("msg", "Skipping malformed job", "err", err)
		return
	}
	if d.routeBySender && job.SenderInstance != "" && job.SenderInstance != instanceID {
		stats.Skipped++
		return
	}

	chatID := ChatID(job.PhoneNumber)
	if err := dispatch(ctx, chatID, job.MessageBody); err != nil {
		stats.Failed++
		level.Error(logger).Log("msg", "Failed to send message, leaving job for redelivery", "chat_id", chatID, "err", err)
		return
	}
	stats.Delivered++

	if err := d.queue.Delete(ctx, m.ReceiptHandle); err != nil {
		// Delivered but not acknowledged: the job will be redelivered (at-least-once).
		level.Error(logger).Log("msg", "Failed to delete processed message", "err", err)
		return
	}
	level.Debug(logger).Log("msg", "Processed and deleted message", "chat_id", chatID)
}

// IsDrainAborted reports whether err ended a drain pass because of the queue backend.
func IsDrainAborted(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && IsQueueUnavailableError(err)
}

func (s DrainStats) String() string {
	return fmt.Sprintf("receives=%d received=%d delivered=%d failed=%d skipped=%d", s.Receives, s.Received, s.Delivered, s.Failed, s.Skipped)
}

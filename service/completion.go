package service

import (
	"sync"

	"mysessions/domain"
	"mysessions/helpers"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Completion modes selectable through configuration.
const (
	CompletionModeIdle = "idle"
	CompletionModeExit = "exit"
)

// IdlePolicy keeps a long-lived service running: a completion only returns the instance to idle.
type IdlePolicy struct {
	logger log.Logger
}

// NewIdlePolicy creates an IdlePolicy. Panics on nil logger.
func NewIdlePolicy(logger log.Logger) *IdlePolicy {
	return &IdlePolicy{logger: log.With(helpers.NilPanic(logger, "service.completion.go: logger is required"), "component", "completion")}
}

// Notify logs the completion.
func (p *IdlePolicy) Notify(c domain.Completion) {
	level.Info(p.logger).Log("msg", "Instance idle", "instance_id", c.InstanceID, "reason", c.Reason)
}

// ExitPolicy stops the process for run-to-completion deployments: once credentials are
// persisted with no drain pass running, or once the first drain pass empties the queue.
type ExitPolicy struct {
	stop   func()
	once   sync.Once
	logger log.Logger
}

// NewExitPolicy creates an ExitPolicy that calls stop at most once. Panics on nil stop or logger.
func NewExitPolicy(stop func(), logger log.Logger) *ExitPolicy {
	return &ExitPolicy{
		stop:   helpers.NilPanic(stop, "service.completion.go: stop is required"),
		logger: log.With(helpers.NilPanic(logger, "service.completion.go: logger is required"), "component", "completion"),
	}
}

// Notify decides whether the completion ends the run.
func (p *ExitPolicy) Notify(c domain.Completion) {
	logger := log.With(p.logger, "instance_id", c.InstanceID, "reason", c.Reason)
	if c.PendingWork {
		level.Info(logger).Log("msg", "Completion deferred, queue work still pending")
		return
	}
	if c.Reason == domain.CompletionQueueDrained && !c.FirstPass {
		level.Info(logger).Log("msg", "Queue drained")
		return
	}
	p.once.Do(func() {
		level.Info(logger).Log("msg", "Run complete, stopping")
		p.stop()
	})
}

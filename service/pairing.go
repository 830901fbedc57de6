package service

import (
	"time"

	"mysessions/helpers"
	"mysessions/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// DefaultPairingTimeout is how long an instance may wait for its pairing challenge to be scanned.
const DefaultPairingTimeout = 5 * time.Minute

// PairingSupervisor arms one expiry timer per instance when a pairing challenge is issued.
// When the timer fires and the instance still has no profile, the instance is removed from
// the registry and handed to teardown.
type PairingSupervisor struct {
	registry *Registry
	clock    interfaces.TimeProvider
	timeout  time.Duration
	teardown func(e *instanceEntry, reason string)
	logger   log.Logger
}

// NewPairingSupervisor creates a supervisor. Panics on nil registry, clock, teardown or logger.
func NewPairingSupervisor(registry *Registry, clock interfaces.TimeProvider, timeout time.Duration, teardown func(e *instanceEntry, reason string), logger log.Logger) *PairingSupervisor {
	return &PairingSupervisor{
		registry: helpers.NilPanic(registry, "service.pairing.go: registry is required"),
		clock:    helpers.NilPanic(clock, "service.pairing.go: clock is required"),
		timeout:  helpers.DurationOr(timeout, DefaultPairingTimeout),
		teardown: helpers.NilPanic(teardown, "service.pairing.go: teardown is required"),
		logger:   log.With(helpers.NilPanic(logger, "service.pairing.go: logger is required"), "component", "pairing_supervisor"),
	}
}

// Arm arms the expiry timer for the instance. A repeated challenge keeps the timer that is
// already armed, so the deadline counts from the first challenge. Returns true when a new
// timer was armed.
func (s *PairingSupervisor) Arm(instanceID string) bool {
	armed := s.registry.armPairingTimer(instanceID, func(t *armedTimer) interfaces.Timer {
		return s.clock.AfterFunc(s.timeout, func() { s.expire(instanceID, t) })
	})
	if armed {
		level.Debug(s.logger).Log("msg", "Pairing timer armed", "instance_id", instanceID, "timeout", s.timeout)
	}
	return armed
}

// Armed reports whether an expiry timer is currently armed for the instance.
func (s *PairingSupervisor) Armed(instanceID string) bool {
	return s.registry.hasPairingTimer(instanceID)
}

func (s *PairingSupervisor) expire(instanceID string, t *armedTimer) {
	e, ok := s.registry.removeIfUnpaired(instanceID, t)
	if !ok {
		return
	}
	level.Info(s.logger).Log("msg", "Instance not logged in before pairing timeout, deleting", "instance_id", instanceID, "timeout", s.timeout)
	s.teardown(e, "pairing_expired")
}

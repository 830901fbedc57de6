package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"mysessions/domain"
	"mysessions/interfaces"

	"github.com/cenkalti/backoff/v4"
)

// Entry is a consistent snapshot of a registered instance together with its engine handle.
type Entry struct {
	Info   domain.InstanceInfo
	Engine interfaces.Engine

	// ctx is cancelled when the instance is removed; engine calls made on behalf of the
	// instance use it so a termination abandons outstanding work.
	ctx context.Context
}

// Context returns the instance lifetime context.
func (e Entry) Context() context.Context {
	if e.ctx == nil {
		return context.Background()
	}
	return e.ctx
}

// armedTimer identifies one armed pairing-expiry timer.
type armedTimer struct {
	timer interfaces.Timer
}

type instanceEntry struct {
	id        string
	engine    interfaces.Engine
	state     domain.State
	profile   string
	artifact  string
	updatedAt time.Time

	pairingTimer   *armedTimer
	reconnectTimer interfaces.Timer
	reconnect      backoff.BackOff
	reconnects     int

	ctx     context.Context
	cancel  context.CancelFunc
	mailbox *eventMailbox
	pairing *pairingSignal

	draining    bool
	drainPasses int
}

func (e *instanceEntry) info() domain.InstanceInfo {
	return domain.InstanceInfo{
		InstanceID:      e.id,
		State:           e.state,
		Profile:         e.profile,
		PairingArtifact: e.artifact,
		UpdatedAt:       e.updatedAt,
	}
}

func (e *instanceEntry) snapshot() Entry {
	return Entry{Info: e.info(), Engine: e.engine, ctx: e.ctx}
}

func (e *instanceEntry) stopTimers() {
	if e.pairingTimer != nil {
		e.pairingTimer.timer.Stop()
		e.pairingTimer = nil
	}
	if e.reconnectTimer != nil {
		e.reconnectTimer.Stop()
		e.reconnectTimer = nil
	}
}

// Registry is the process-wide map from instance id to live session state and the sole
// source of truth for whether an instance exists and is ready. Every mutation happens
// under one lock, so a single id is never mutated by two code paths at once.
type Registry struct {
	now          func() time.Time
	newReconnect func() backoff.BackOff

	mu      sync.Mutex
	entries map[string]*instanceEntry
}

// NewRegistry creates an empty registry. newReconnect builds the reconnect backoff of a
// new instance; nil means no automatic reconnects.
func NewRegistry(now func() time.Time, newReconnect func() backoff.BackOff) *Registry {
	if now == nil {
		now = time.Now
	}
	if newReconnect == nil {
		newReconnect = func() backoff.BackOff { return &backoff.StopBackOff{} }
	}
	return &Registry{
		now:          now,
		newReconnect: newReconnect,
		entries:      make(map[string]*instanceEntry),
	}
}

// Register adds a new instance in the Initializing state.
// Returns instance_exists when the id is already live.
func (r *Registry) Register(id string, engine interfaces.Engine) error {
	return r.register(context.Background(), id, engine, newEventMailbox())
}

func (r *Registry) register(parent context.Context, id string, engine interfaces.Engine, mailbox *eventMailbox) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; ok {
		return NewInstanceExistsError(id)
	}
	ctx, cancel := context.WithCancel(parent)
	r.entries[id] = &instanceEntry{
		id:        id,
		engine:    engine,
		state:     domain.StateInitializing,
		updatedAt: r.now(),
		reconnect: r.newReconnect(),
		ctx:       ctx,
		cancel:    cancel,
		mailbox:   mailbox,
		pairing:   newPairingSignal(),
	}
	return nil
}

// Get returns a snapshot of the instance; ok is false when the id is not registered.
func (r *Registry) Get(id string) (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return Entry{}, false
	}
	return e.snapshot(), true
}

// List returns snapshots of all registered instances ordered by id.
func (r *Registry) List() []domain.InstanceInfo {
	r.mu.Lock()
	out := make([]domain.InstanceInfo, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.info())
	}
	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].InstanceID < out[j].InstanceID })
	return out
}

// Len returns the number of registered instances.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// SetProfile records the resolved profile. A profile, once set, is kept for the lifetime
// of the instance; later calls do not overwrite it. Returns false for an unknown id.
func (r *Registry) SetProfile(id string, profile string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return false
	}
	if e.profile == "" {
		e.profile = profile
		e.updatedAt = r.now()
	}
	return true
}

// Remove deletes the instance, stops its timers, cancels its context and closes its
// mailbox, all atomically. Only the caller that receives ok=true owns the returned
// engine handle and must destroy it.
func (r *Registry) Remove(id string) (interfaces.Engine, bool) {
	e, ok := r.removeIf(id, func(*instanceEntry) bool { return true })
	if !ok {
		return nil, false
	}
	return e.engine, true
}

func (r *Registry) removeIf(id string, pred func(e *instanceEntry) bool) (*instanceEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok || !pred(e) {
		return nil, false
	}
	delete(r.entries, id)
	e.stopTimers()
	e.state = domain.StateTerminated
	e.artifact = ""
	e.updatedAt = r.now()
	e.cancel()
	e.mailbox.Close()
	e.pairing.resolve("", NewInstanceNotFoundError(id))
	return e, true
}

// removeIfUnpaired removes the instance only when the given timer is still the armed one
// and no profile has been resolved. The check and the removal are one critical section,
// so a Ready transition can never interleave between them.
func (r *Registry) removeIfUnpaired(id string, timer *armedTimer) (*instanceEntry, bool) {
	return r.removeIf(id, func(e *instanceEntry) bool {
		return e.pairingTimer == timer && e.profile == ""
	})
}

// update runs fn on the live entry under the registry lock.
func (r *Registry) update(id string, fn func(e *instanceEntry)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return false
	}
	fn(e)
	return true
}

// apply feeds one event to the lifecycle machine and performs the data-level actions
// (artifact, profile, pairing-timer cancellation, reconnect reset) atomically. Actions that
// need I/O are left to the caller through the returned transition.
func (r *Registry) apply(id string, ev domain.Event, artifact string, renderErr error) (Transition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return Transition{}, NewInstanceNotFoundError(id)
	}

	t, err := NextTransition(e.state, ev.Kind)
	if err != nil {
		return t, err
	}

	e.state = t.To
	e.updatedAt = r.now()
	for _, a := range t.Actions {
		switch a {
		case ActionCacheArtifact:
			e.artifact = artifact
		case ActionClearArtifact:
			e.artifact = ""
		case ActionResolveProfile:
			if e.profile == "" {
				e.profile = ev.Profile
				if e.profile == "" {
					e.profile = id
				}
			}
		case ActionCancelPairingTimer:
			if e.pairingTimer != nil {
				e.pairingTimer.timer.Stop()
				e.pairingTimer = nil
			}
		case ActionResetReconnect:
			if e.reconnectTimer != nil {
				e.reconnectTimer.Stop()
				e.reconnectTimer = nil
			}
			e.reconnect.Reset()
			e.reconnects = 0
		}
	}

	switch ev.Kind {
	case domain.EventPairingChallenge:
		e.pairing.resolve(artifact, renderErr)
	case domain.EventAuthenticated, domain.EventReady:
		e.pairing.resolve("", nil)
	case domain.EventAuthFailure:
		e.pairing.resolve("", NewAuthFailureError(id, ev.Reason))
	}

	return t, nil
}

// armPairingTimer arms the pairing-expiry timer through arm unless a timer is already
// armed or a profile is already resolved. The timer is created under the lock, so its
// callback cannot observe the entry before the handle is stored.
func (r *Registry) armPairingTimer(id string, arm func(t *armedTimer) interfaces.Timer) bool {
	armed := false
	r.update(id, func(e *instanceEntry) {
		if e.pairingTimer != nil || e.profile != "" {
			return
		}
		t := &armedTimer{}
		t.timer = arm(t)
		e.pairingTimer = t
		armed = true
	})
	return armed
}

// hasPairingTimer reports whether a pairing-expiry timer is armed for the instance.
func (r *Registry) hasPairingTimer(id string) bool {
	armed := false
	r.update(id, func(e *instanceEntry) { armed = e.pairingTimer != nil })
	return armed
}

// scheduleReconnect asks the instance's backoff for the next delay and arms the
// reconnect timer through schedule. It returns the attempt number, or ok=false when the
// instance is gone or its attempts are exhausted.
func (r *Registry) scheduleReconnect(id string, schedule func(delay time.Duration) interfaces.Timer) (attempt int, delay time.Duration, ok bool) {
	r.update(id, func(e *instanceEntry) {
		d := e.reconnect.NextBackOff()
		if d == backoff.Stop {
			return
		}
		if e.reconnectTimer != nil {
			e.reconnectTimer.Stop()
		}
		e.reconnects++
		e.reconnectTimer = schedule(d)
		attempt, delay, ok = e.reconnects, d, true
	})
	return attempt, delay, ok
}

// resetReconnect stops a pending reconnect and restores the full attempt budget.
func (r *Registry) resetReconnect(id string) bool {
	return r.update(id, func(e *instanceEntry) {
		if e.reconnectTimer != nil {
			e.reconnectTimer.Stop()
			e.reconnectTimer = nil
		}
		e.reconnect.Reset()
		e.reconnects = 0
	})
}

// beginDrain marks a drain pass as running. It fails when the instance is not Ready or a
// pass is already running. firstPass is true for the first pass of the instance.
func (r *Registry) beginDrain(id string) (entry Entry, firstPass bool, ok bool) {
	r.update(id, func(e *instanceEntry) {
		if !CanDrain(e.state) || e.draining {
			return
		}
		e.draining = true
		e.drainPasses++
		entry, firstPass, ok = e.snapshot(), e.drainPasses == 1, true
	})
	return entry, firstPass, ok
}

func (r *Registry) endDrain(id string) {
	r.update(id, func(e *instanceEntry) { e.draining = false })
}

// isDraining reports whether a drain pass is running for the instance.
func (r *Registry) isDraining(id string) bool {
	draining := false
	r.update(id, func(e *instanceEntry) { draining = e.draining })
	return draining
}

// isReady reports whether the instance is registered and Ready.
func (r *Registry) isReady(id string) bool {
	ready := false
	r.update(id, func(e *instanceEntry) { ready = CanDrain(e.state) })
	return ready
}

func (r *Registry) mailbox(id string) (*eventMailbox, bool) {
	var mb *eventMailbox
	ok := r.update(id, func(e *instanceEntry) { mb = e.mailbox })
	return mb, ok
}

func (r *Registry) pairingSignal(id string) (*pairingSignal, bool) {
	var p *pairingSignal
	ok := r.update(id, func(e *instanceEntry) { p = e.pairing })
	return p, ok
}

// ids returns the registered ids.
func (r *Registry) ids() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for id := range r.entries {
		out = append(out, id)
	}
	return out
}

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"mysessions/domain"
	"mysessions/helpers"
	"mysessions/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Messages reported for instances without a resolved profile.
const (
	ProfileNotLoggedIn     = "Not logged in yet"
	ProfileNotYetAvailable = "Instance is ready, but profile details not yet available."
)

// HealthUp is the health status of a serving orchestrator.
const HealthUp = "UP"

const (
	defaultChallengeWait  = 60 * time.Second
	defaultDestroyTimeout = 30 * time.Second
	maxIDAttempts         = 8
)

// OrchestratorConfig holds the tunables of the session orchestrator.
type OrchestratorConfig struct {
	PairingTimeout time.Duration
	// ChallengeWait bounds how long CreateInstance waits for the first pairing challenge.
	ChallengeWait  time.Duration
	DestroyTimeout time.Duration
	Receive        domain.ReceiveOptions
	RouteBySender  bool
	Reconnect      ReconnectPolicy
}

// Dependencies are the collaborators of the orchestrator. Queue, Mirror and Completion are optional.
type Dependencies struct {
	Store      interfaces.SessionStore
	Queue      interfaces.Queue
	Engines    interfaces.EngineFactory
	Renderer   interfaces.ArtifactRenderer
	Clock      interfaces.TimeProvider
	Completion interfaces.CompletionNotifier
	Mirror     *StatusMirror
}

// Orchestrator owns every live instance of the process: it creates and rehydrates them,
// feeds engine events through the lifecycle machine, supervises pairing expiry and
// reconnects, drains the work queue for ready instances and tears instances down.
type Orchestrator struct {
	registry   *Registry
	pairing    *PairingSupervisor
	drainer    *Drainer
	store      interfaces.SessionStore
	queue      interfaces.Queue
	engines    interfaces.EngineFactory
	renderer   interfaces.ArtifactRenderer
	clock      interfaces.TimeProvider
	completion interfaces.CompletionNotifier
	mirror     *StatusMirror
	cfg        OrchestratorConfig
	logger     log.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOrchestrator creates an orchestrator. Panics on a missing required dependency or nil logger.
func NewOrchestrator(deps Dependencies, cfg OrchestratorConfig, logger log.Logger) *Orchestrator {
	logger = log.With(helpers.NilPanic(logger, "service.orchestrator.go: logger is required"), "component", "orchestrator")
	if cfg.ChallengeWait <= 0 {
		cfg.ChallengeWait = defaultChallengeWait
	}
	if cfg.DestroyTimeout <= 0 {
		cfg.DestroyTimeout = defaultDestroyTimeout
	}
	if deps.Completion == nil {
		deps.Completion = NewIdlePolicy(logger)
	}

	o := &Orchestrator{
		store:      helpers.NilPanic(deps.Store, "service.orchestrator.go: store is required"),
		queue:      deps.Queue,
		engines:    helpers.NilPanic(deps.Engines, "service.orchestrator.go: engine factory is required"),
		renderer:   helpers.NilPanic(deps.Renderer, "service.orchestrator.go: renderer is required"),
		clock:      helpers.NilPanic(deps.Clock, "service.orchestrator.go: clock is required"),
		completion: deps.Completion,
		mirror:     deps.Mirror,
		cfg:        cfg,
		logger:     logger,
	}
	o.ctx, o.cancel = context.WithCancel(context.Background())
	o.registry = NewRegistry(o.clock.Now, cfg.Reconnect.NewBackOff)
	o.pairing = NewPairingSupervisor(o.registry, o.clock, cfg.PairingTimeout, o.teardown, logger)
	if o.queue != nil {
		o.drainer = NewDrainer(o.queue, cfg.Receive, cfg.RouteBySender, logger)
	}
	return o
}

// Registry exposes the instance registry.
func (o *Orchestrator) Registry() *Registry {
	return o.registry
}

// Health reports the service status.
func (o *Orchestrator) Health() string {
	return HealthUp
}

// CreateInstance creates a new instance under a fresh id and waits (bounded by
// ChallengeWait and ctx) for its first pairing challenge. An instance that produces no
// challenge in time is torn down and pairing_timeout is returned.
func (o *Orchestrator) CreateInstance(ctx context.Context) (domain.InstanceInfo, error) {
	id, err := o.newUniqueID()
	if err != nil {
		return domain.InstanceInfo{}, NewInternalServerError("Failed to create instance.", err)
	}

	signal, err := o.startInstance(id)
	if err != nil {
		return domain.InstanceInfo{}, err
	}

	waitCtx, cancel := context.WithTimeout(ctx, o.cfg.ChallengeWait)
	defer cancel()
	artifact, err := signal.Wait(waitCtx)
	if err != nil {
		switch {
		case ctx.Err() != nil:
			o.removeAndTeardown(id, "request_canceled")
			return domain.InstanceInfo{}, ctx.Err()
		case waitCtx.Err() != nil:
			o.removeAndTeardown(id, "challenge_wait_exceeded")
			return domain.InstanceInfo{}, NewPairingTimeoutError(o.cfg.ChallengeWait, err)
		case IsInternalServerError(err):
			// The caller never learns the id, so nobody else could terminate it.
			o.removeAndTeardown(id, "render_failed")
		}
		return domain.InstanceInfo{}, err
	}

	info := domain.InstanceInfo{InstanceID: id, State: domain.StateAwaitingPairing, PairingArtifact: artifact}
	if entry, ok := o.registry.Get(id); ok {
		info = entry.Info
		if info.PairingArtifact == "" {
			info.PairingArtifact = artifact
		}
	}
	return info, nil
}

func (o *Orchestrator) newUniqueID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id, err := NewInstanceID()
		if err != nil {
			return "", err
		}
		if _, taken := o.registry.Get(id); !taken {
			return id, nil
		}
	}
	return "", errors.New("could not generate a unique instance id")
}

// startInstance registers a new instance under id, starts its event loop and initialises
// its engine in the background. The engine decides by itself whether stored credentials
// make a pairing challenge unnecessary.
func (o *Orchestrator) startInstance(id string) (*pairingSignal, error) {
	mailbox := newEventMailbox()
	engine, err := o.engines.NewEngine(id, mailbox.Push)
	if err != nil {
		return nil, NewInternalServerError("Failed to create instance engine.", err)
	}
	if err := o.registry.register(o.ctx, id, engine, mailbox); err != nil {
		return nil, err
	}
	entry, _ := o.registry.Get(id)
	signal, _ := o.registry.pairingSignal(id)

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		mailbox.Run(func(ev domain.Event) { o.handleEvent(id, ev) })
	}()

	o.publish(id)
	o.initialize(id, entry, false)

	level.Info(o.logger).Log("msg", "Instance initializing", "instance_id", id)
	return signal, nil
}

// initialize runs engine.Initialize in the background. A failed first start is fed back
// as an auth_failure event so the instance ends up Failed and visible to the operator. A
// failed reconnect leaves the instance Disconnected and schedules the next attempt.
func (o *Orchestrator) initialize(id string, entry Entry, reconnecting bool) {
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ctx := entry.Context()
		err := entry.Engine.Initialize(ctx)
		if err == nil || ctx.Err() != nil {
			return
		}
		level.Error(o.logger).Log("msg", "Failed to initialize engine", "instance_id", id, "reconnecting", reconnecting, "err", err)
		if reconnecting {
			if current, ok := o.registry.Get(id); ok && current.Info.State == domain.StateDisconnected {
				o.scheduleReconnect(id)
			}
			return
		}
		if mb, ok := o.registry.mailbox(id); ok {
			mb.Push(domain.Event{Kind: domain.EventAuthFailure, Reason: "initialize: " + err.Error()})
		}
	}()
}

// HandleEngineEvent queues an event reported for the instance by an out-of-process engine.
func (o *Orchestrator) HandleEngineEvent(instanceID string, ev domain.Event) error {
	mb, ok := o.registry.mailbox(instanceID)
	if !ok {
		return NewInstanceNotFoundError(instanceID)
	}
	mb.Push(ev)
	return nil
}

func (o *Orchestrator) handleEvent(id string, ev domain.Event) {
	logger := log.With(o.logger, "instance_id", id, "event", ev.Kind)

	var artifact string
	var renderErr error
	if ev.Kind == domain.EventPairingChallenge {
		artifact, renderErr = o.renderer.Render(ev.Challenge)
		if renderErr != nil {
			level.Error(logger).Log("msg", "Failed to render pairing challenge", "err", renderErr)
			renderErr = NewInternalServerError("Error generating QR code for instance "+id+".", renderErr)
		}
	}

	t, err := o.registry.apply(id, ev, artifact, renderErr)
	if err != nil {
		if IsEntityNotFoundError(err) {
			return
		}
		level.Warn(logger).Log("msg", "Ignoring event", "err", err)
		return
	}

	switch ev.Kind {
	case domain.EventPairingChallenge:
		level.Info(logger).Log("msg", "Pairing challenge issued")
	case domain.EventAuthenticated:
		level.Info(logger).Log("msg", "Instance authenticated")
	case domain.EventReady:
		level.Info(logger).Log("msg", "Instance ready and logged in")
	case domain.EventAuthFailure:
		level.Error(logger).Log("msg", "Authentication failed", "reason", ev.Reason)
	case domain.EventDisconnected:
		level.Warn(logger).Log("msg", "Instance disconnected", "reason", ev.Reason)
	case domain.EventSessionPersisted:
		level.Info(logger).Log("msg", "Session saved to remote store")
	}

	for _, a := range t.Actions {
		switch a {
		case ActionArmPairingTimer:
			o.pairing.Arm(id)
		case ActionStartDrain:
			o.startDrain(id)
		case ActionReinitialize:
			o.scheduleReconnect(id)
		case ActionNotifyPersisted:
			o.completion.Notify(domain.Completion{
				InstanceID:  id,
				Reason:      domain.CompletionSessionPersisted,
				PendingWork: o.registry.isDraining(id),
			})
		}
	}

	if t.From != t.To {
		o.publish(id)
	}
}

func (o *Orchestrator) scheduleReconnect(id string) {
	attempt, delay, ok := o.registry.scheduleReconnect(id, func(delay time.Duration) interfaces.Timer {
		return o.clock.AfterFunc(delay, func() { o.reconnect(id) })
	})
	if !ok {
		level.Error(o.logger).Log("msg", "Reconnect attempts exhausted, instance left disconnected", "instance_id", id)
		return
	}
	level.Info(o.logger).Log("msg", "Reconnect scheduled", "instance_id", id, "attempt", attempt, "delay", delay)
}

func (o *Orchestrator) reconnect(id string) {
	entry, ok := o.registry.Get(id)
	if !ok {
		return
	}
	o.initialize(id, entry, true)
}

// SendMessage delivers body to target through the instance's engine.
func (o *Orchestrator) SendMessage(ctx context.Context, instanceID string, target string, body string) (domain.DeliveryResult, error) {
	entry, ok := o.registry.Get(instanceID)
	if !ok {
		return domain.DeliveryResult{}, NewInstanceNotFoundError(instanceID)
	}
	chatID := ChatID(target)
	res, err := entry.Engine.SendMessage(ctx, chatID, body)
	if err != nil {
		return domain.DeliveryResult{}, NewDeliveryFailedError("Failed to send message.", err)
	}
	if res.ChatID == "" {
		res.ChatID = chatID
	}
	return res, nil
}

// GetDetails returns the instance snapshot.
func (o *Orchestrator) GetDetails(instanceID string) (domain.InstanceInfo, error) {
	entry, ok := o.registry.Get(instanceID)
	if !ok {
		return domain.InstanceInfo{}, NewInstanceNotFoundError(instanceID)
	}
	return entry.Info, nil
}

// ListInstances returns snapshots of all live instances ordered by id.
func (o *Orchestrator) ListInstances() []domain.InstanceInfo {
	return o.registry.List()
}

// RestartInstance re-invokes engine initialisation on the existing handle and restores the
// reconnect budget.
func (o *Orchestrator) RestartInstance(instanceID string) error {
	entry, ok := o.registry.Get(instanceID)
	if !ok {
		return NewInstanceNotFoundError(instanceID)
	}
	o.registry.resetReconnect(instanceID)
	o.initialize(instanceID, entry, false)
	level.Info(o.logger).Log("msg", "Instance restarted", "instance_id", instanceID)
	return nil
}

// TerminateInstance destroys the instance's engine, cancels its timers and removes it.
// Of several concurrent calls for one id exactly one succeeds; the rest get entity_not_found.
func (o *Orchestrator) TerminateInstance(instanceID string) error {
	if !o.removeAndTeardown(instanceID, "terminated") {
		return NewInstanceNotFoundError(instanceID)
	}
	return nil
}

func (o *Orchestrator) removeAndTeardown(id string, reason string) bool {
	e, ok := o.registry.removeIf(id, func(*instanceEntry) bool { return true })
	if !ok {
		return false
	}
	o.teardown(e, reason)
	return true
}

// teardown destroys the engine of an entry that has already been removed from the registry.
func (o *Orchestrator) teardown(e *instanceEntry, reason string) {
	ctx, cancel := context.WithTimeout(context.Background(), o.cfg.DestroyTimeout)
	defer cancel()
	if err := e.engine.Destroy(ctx); err != nil {
		level.Warn(o.logger).Log("msg", "Failed to destroy engine", "instance_id", e.id, "err", err)
	}
	if o.mirror != nil {
		o.mirror.Remove(ctx, e.id)
	}
	level.Info(o.logger).Log("msg", "Instance terminated", "instance_id", e.id, "reason", reason)
}

// TriggerDrain starts a drain pass for a ready instance (an external re-poll).
// A pass that is already running is left alone.
func (o *Orchestrator) TriggerDrain(instanceID string) error {
	entry, ok := o.registry.Get(instanceID)
	if !ok {
		return NewInstanceNotFoundError(instanceID)
	}
	if !CanDrain(entry.Info.State) {
		return NewBadParameterError(fmt.Sprintf("Instance %s is not ready (state %s).", instanceID, entry.Info.State), nil)
	}
	if o.drainer == nil {
		return NewQueueUnavailableError("No work queue configured.", nil)
	}
	o.startDrain(instanceID)
	return nil
}

func (o *Orchestrator) startDrain(id string) {
	if o.drainer == nil {
		return
	}
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		o.runDrain(id)
	}()
}

func (o *Orchestrator) runDrain(id string) {
	entry, firstPass, ok := o.registry.beginDrain(id)
	if !ok {
		return
	}
	dispatch := func(ctx context.Context, chatID string, body string) error {
		_, err := entry.Engine.SendMessage(ctx, chatID, body)
		return err
	}
	stats, err := o.drainer.Drain(entry.Context(), id, dispatch, func() bool { return o.registry.isReady(id) })
	o.registry.endDrain(id)

	logger := log.With(o.logger, "instance_id", id, "stats", stats.String())
	if err != nil {
		if IsDrainAborted(err) {
			level.Error(logger).Log("msg", "Drain pass aborted", "err", err)
		}
		return
	}
	if !o.registry.isReady(id) {
		return
	}
	level.Info(logger).Log("msg", "Drain pass complete")
	o.completion.Notify(domain.Completion{
		InstanceID: id,
		Reason:     domain.CompletionQueueDrained,
		FirstPass:  firstPass,
	})
}

// Rehydrate re-initialises one instance per stored session blob. It runs once at start;
// listing errors are logged and returned, an empty store is silent. It returns the number
// of instances started.
func (o *Orchestrator) Rehydrate(ctx context.Context) (int, error) {
	ids, err := o.store.List(ctx)
	if err != nil {
		level.Error(o.logger).Log("msg", "Failed to load saved sessions from store", "err", err)
		return 0, err
	}
	if len(ids) == 0 {
		level.Info(o.logger).Log("msg", "No existing sessions found")
		return 0, nil
	}

	started := 0
	for _, id := range ids {
		if !ValidInstanceID(id) {
			level.Warn(o.logger).Log("msg", "Skipping stored session with invalid id", "instance_id", id)
			continue
		}
		if _, err := o.startInstance(id); err != nil {
			level.Warn(o.logger).Log("msg", "Failed to rehydrate instance", "instance_id", id, "err", err)
			continue
		}
		started++
	}
	level.Info(o.logger).Log("msg", "Sessions rehydrated", "count", started)
	return started, nil
}

// SaveSession persists the credential blob of a registered instance and reports the
// durable write to the instance's lifecycle as a persisted event.
func (o *Orchestrator) SaveSession(ctx context.Context, instanceID string, blob []byte) error {
	mb, ok := o.registry.mailbox(instanceID)
	if !ok {
		return NewInstanceNotFoundError(instanceID)
	}
	if err := o.store.Save(ctx, instanceID, blob); err != nil {
		return err
	}
	mb.Push(domain.Event{Kind: domain.EventSessionPersisted})
	return nil
}

// LoadSession returns the stored credential blob.
func (o *Orchestrator) LoadSession(ctx context.Context, instanceID string) ([]byte, error) {
	return o.store.Load(ctx, instanceID)
}

// SessionExists reports whether a credential blob is stored.
func (o *Orchestrator) SessionExists(ctx context.Context, instanceID string) (bool, error) {
	return o.store.Exists(ctx, instanceID)
}

// DeleteSession removes the stored credential blob.
func (o *Orchestrator) DeleteSession(ctx context.Context, instanceID string) error {
	return o.store.Delete(ctx, instanceID)
}

// RunMirror keeps the status mirror fresh until ctx is done. No-op without a mirror.
func (o *Orchestrator) RunMirror(ctx context.Context) {
	if o.mirror == nil {
		return
	}
	o.mirror.Run(ctx, o.registry.List)
}

func (o *Orchestrator) publish(id string) {
	if o.mirror == nil {
		return
	}
	entry, ok := o.registry.Get(id)
	if !ok {
		return
	}
	o.mirror.Publish(o.ctx, entry.Info)
	// A terminate between Get and the write has already removed the mirror entry.
	if _, ok := o.registry.Get(id); !ok {
		o.mirror.Remove(context.Background(), id)
	}
}

// Shutdown destroys every live instance (stored sessions are kept) and waits for
// background work to finish or ctx to expire.
func (o *Orchestrator) Shutdown(ctx context.Context) error {
	for _, id := range o.registry.ids() {
		o.removeAndTeardown(id, "shutdown")
	}
	o.cancel()

	done := make(chan struct{})
	go func() {
		o.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// MirroredStatuses returns the instance statuses mirrored by every process sharing the
// status cache. Without a mirror it returns this process's instances.
func (o *Orchestrator) MirroredStatuses(ctx context.Context) ([]domain.InstanceInfo, error) {
	if o.mirror == nil {
		infos := o.registry.List()
		for i := range infos {
			infos[i].PairingArtifact = ""
		}
		return infos, nil
	}
	return o.mirror.Snapshot(ctx)
}

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"mysessions/domain"
	"mysessions/helpers"
	"mysessions/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type teardownRecorder struct {
	mu  sync.Mutex
	ids []string
}

func (r *teardownRecorder) teardown(e *instanceEntry, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, e.id+":"+reason)
	_ = e.engine.Destroy(context.Background())
}

func (r *teardownRecorder) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ids...)
}

func TestNewPairingSupervisor_NilPanics(t *testing.T) {
	r := newTestRegistry()
	clock := newManualClock(helpers.TestNow())
	rec := &teardownRecorder{}
	assert.Panics(t, func() { NewPairingSupervisor(nil, clock, time.Minute, rec.teardown, log.NewNopLogger()) })
	assert.Panics(t, func() { NewPairingSupervisor(r, nil, time.Minute, rec.teardown, log.NewNopLogger()) })
	assert.Panics(t, func() { NewPairingSupervisor(r, clock, time.Minute, nil, log.NewNopLogger()) })
	assert.Panics(t, func() { NewPairingSupervisor(r, clock, time.Minute, rec.teardown, nil) })
}

func TestPairingSupervisor_ExpiresUnpairedInstance(t *testing.T) {
	r := newTestRegistry()
	clock := newManualClock(helpers.TestNow())
	rec := &teardownRecorder{}
	s := NewPairingSupervisor(r, clock, 0, rec.teardown, log.NewNopLogger())
	engine := &mock.EngineMock{}
	require.NoError(t, r.Register("id1", engine))

	require.True(t, s.Arm("id1"))
	assert.True(t, s.Armed("id1"))
	assert.Equal(t, []time.Duration{DefaultPairingTimeout}, clock.Active())

	clock.Advance(DefaultPairingTimeout - time.Second)
	_, ok := r.Get("id1")
	require.True(t, ok, "not expired yet")

	clock.Advance(time.Second)
	_, ok = r.Get("id1")
	assert.False(t, ok)
	assert.Equal(t, []string{"id1:pairing_expired"}, rec.calls())
	assert.Len(t, engine.DestroyCalls(), 1)
}

func TestPairingSupervisor_RepeatedChallengeKeepsDeadline(t *testing.T) {
	r := newTestRegistry()
	clock := newManualClock(helpers.TestNow())
	rec := &teardownRecorder{}
	s := NewPairingSupervisor(r, clock, time.Minute, rec.teardown, log.NewNopLogger())
	require.NoError(t, r.Register("id1", &mock.EngineMock{}))

	require.True(t, s.Arm("id1"))
	clock.Advance(30 * time.Second)
	assert.False(t, s.Arm("id1"))
	clock.Advance(30 * time.Second)

	assert.Equal(t, []string{"id1:pairing_expired"}, rec.calls())
}

func TestPairingSupervisor_ReadyBeforeExpiry(t *testing.T) {
	r := newTestRegistry()
	clock := newManualClock(helpers.TestNow())
	rec := &teardownRecorder{}
	s := NewPairingSupervisor(r, clock, time.Minute, rec.teardown, log.NewNopLogger())
	require.NoError(t, r.Register("id1", &mock.EngineMock{}))

	require.True(t, s.Arm("id1"))
	_, err := r.apply("id1", domain.Event{Kind: domain.EventReady, Profile: "15551234567"}, "", nil)
	require.NoError(t, err)

	// Even a callback that already escaped Stop must find nothing to remove.
	clock.timer(0).Fire()

	e, ok := r.Get("id1")
	require.True(t, ok)
	assert.Equal(t, domain.StateReady, e.Info.State)
	assert.Empty(t, rec.calls())
	assert.False(t, s.Armed("id1"))
}

func TestPairingSupervisor_ExpiryAfterTerminateIsNoop(t *testing.T) {
	r := newTestRegistry()
	clock := newManualClock(helpers.TestNow())
	rec := &teardownRecorder{}
	s := NewPairingSupervisor(r, clock, time.Minute, rec.teardown, log.NewNopLogger())
	require.NoError(t, r.Register("id1", &mock.EngineMock{}))

	require.True(t, s.Arm("id1"))
	_, ok := r.Remove("id1")
	require.True(t, ok)

	clock.timer(0).Fire()
	assert.Empty(t, rec.calls())
}

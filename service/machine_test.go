package service

import (
	"testing"

	"mysessions/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.State
		kind    domain.EventKind
		to      domain.State
		actions []Action
	}{
		{"challenge from initializing", domain.StateInitializing, domain.EventPairingChallenge, domain.StateAwaitingPairing, []Action{ActionCacheArtifact, ActionArmPairingTimer}},
		{"repeated challenge", domain.StateAwaitingPairing, domain.EventPairingChallenge, domain.StateAwaitingPairing, []Action{ActionCacheArtifact, ActionArmPairingTimer}},
		{"authenticated", domain.StateAwaitingPairing, domain.EventAuthenticated, domain.StateAuthenticated, []Action{ActionClearArtifact}},
		{"ready after authenticated", domain.StateAuthenticated, domain.EventReady, domain.StateReady, []Action{ActionClearArtifact, ActionResolveProfile, ActionCancelPairingTimer, ActionResetReconnect, ActionStartDrain}},
		{"ready from stored credentials", domain.StateInitializing, domain.EventReady, domain.StateReady, []Action{ActionClearArtifact, ActionResolveProfile, ActionCancelPairingTimer, ActionResetReconnect, ActionStartDrain}},
		{"ready again is a no-op", domain.StateReady, domain.EventReady, domain.StateReady, nil},
		{"authenticated in ready is a no-op", domain.StateReady, domain.EventAuthenticated, domain.StateReady, nil},
		{"disconnect", domain.StateReady, domain.EventDisconnected, domain.StateDisconnected, []Action{ActionClearArtifact, ActionReinitialize}},
		{"challenge after disconnect", domain.StateDisconnected, domain.EventPairingChallenge, domain.StateAwaitingPairing, []Action{ActionCacheArtifact, ActionArmPairingTimer}},
		{"auth failure", domain.StateAwaitingPairing, domain.EventAuthFailure, domain.StateFailed, []Action{ActionClearArtifact}},
		{"persisted keeps state", domain.StateReady, domain.EventSessionPersisted, domain.StateReady, []Action{ActionNotifyPersisted}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextTransition(tt.from, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.from, got.From)
			assert.Equal(t, tt.to, got.To)
			assert.Equal(t, tt.actions, got.Actions)
		})
	}
}

func TestNextTransition_Rejected(t *testing.T) {
	_, err := NextTransition(domain.StateReady, domain.EventPairingChallenge)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	for _, kind := range []domain.EventKind{domain.EventReady, domain.EventPairingChallenge, domain.EventDisconnected, domain.EventSessionPersisted} {
		_, err := NextTransition(domain.StateTerminated, kind)
		assert.ErrorIs(t, err, ErrInvalidTransition, string(kind))
	}

	_, err = NextTransition(domain.StateReady, domain.EventKind("bogus"))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransition_Has(t *testing.T) {
	tr, err := NextTransition(domain.StateAuthenticated, domain.EventReady)
	require.NoError(t, err)
	assert.True(t, tr.Has(ActionStartDrain))
	assert.False(t, tr.Has(ActionArmPairingTimer))
}

func TestCanDrain(t *testing.T) {
	assert.True(t, CanDrain(domain.StateReady))
	for _, s := range []domain.State{domain.StateInitializing, domain.StateAwaitingPairing, domain.StateAuthenticated, domain.StateDisconnected, domain.StateFailed, domain.StateTerminated} {
		assert.False(t, CanDrain(s), string(s))
	}
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "start_drain", ActionStartDrain.String())
	assert.Equal(t, "action(99)", Action(99).String())
}

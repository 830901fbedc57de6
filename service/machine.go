package service

import (
	"errors"
	"fmt"

	"mysessions/domain"
)

// ErrInvalidTransition is returned by NextTransition when an event is not accepted in the current state.
var ErrInvalidTransition = errors.New("invalid lifecycle transition")

// Action is a side effect requested by a lifecycle transition.
type Action int

const (
	// ActionCacheArtifact stores the rendered pairing artifact on the instance.
	ActionCacheArtifact Action = iota + 1
	// ActionArmPairingTimer arms the pairing-expiry timer unless one is already armed.
	ActionArmPairingTimer
	// ActionClearArtifact drops the cached pairing artifact.
	ActionClearArtifact
	// ActionResolveProfile sets the profile (first time only).
	ActionResolveProfile
	// ActionCancelPairingTimer stops the pairing-expiry timer.
	ActionCancelPairingTimer
	// ActionResetReconnect resets the reconnect backoff.
	ActionResetReconnect
	// ActionStartDrain starts a drain pass against the work queue.
	ActionStartDrain
	// ActionReinitialize schedules a bounded re-initialisation of the engine.
	ActionReinitialize
	// ActionNotifyPersisted tells the completion policy that credentials were persisted.
	ActionNotifyPersisted
)

func (a Action) String() string {
	switch a {
	case ActionCacheArtifact:
		return "cache_artifact"
	case ActionArmPairingTimer:
		return "arm_pairing_timer"
	case ActionClearArtifact:
		return "clear_artifact"
	case ActionResolveProfile:
		return "resolve_profile"
	case ActionCancelPairingTimer:
		return "cancel_pairing_timer"
	case ActionResetReconnect:
		return "reset_reconnect"
	case ActionStartDrain:
		return "start_drain"
	case ActionReinitialize:
		return "reinitialize"
	case ActionNotifyPersisted:
		return "notify_persisted"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Transition is the outcome of feeding one event to the lifecycle machine.
type Transition struct {
	From    domain.State
	To      domain.State
	Actions []Action
}

// Has reports whether the transition requests the action.
func (t Transition) Has(action Action) bool {
	for _, a := range t.Actions {
		if a == action {
			return true
		}
	}
	return false
}

// NextTransition is the single transition function of the instance lifecycle.
// Terminated is reached only by removal from the registry, never by an engine event.
func NextTransition(from domain.State, kind domain.EventKind) (Transition, error) {
	t := Transition{From: from, To: from}
	if from == domain.StateTerminated {
		return t, fmt.Errorf("%w: %s in %s", ErrInvalidTransition, kind, from)
	}

	switch kind {
	case domain.EventPairingChallenge:
		if from == domain.StateReady {
			// A ready session never goes back to pairing without a disconnect first.
			return t, fmt.Errorf("%w: %s in %s", ErrInvalidTransition, kind, from)
		}
		t.To = domain.StateAwaitingPairing
		t.Actions = []Action{ActionCacheArtifact, ActionArmPairingTimer}

	case domain.EventAuthenticated:
		if from == domain.StateReady {
			return t, nil
		}
		t.To = domain.StateAuthenticated
		t.Actions = []Action{ActionClearArtifact}

	case domain.EventReady:
		if from == domain.StateReady {
			return t, nil
		}
		t.To = domain.StateReady
		t.Actions = []Action{ActionClearArtifact, ActionResolveProfile, ActionCancelPairingTimer, ActionResetReconnect, ActionStartDrain}

	case domain.EventDisconnected:
		t.To = domain.StateDisconnected
		t.Actions = []Action{ActionClearArtifact, ActionReinitialize}

	case domain.EventAuthFailure:
		t.To = domain.StateFailed
		t.Actions = []Action{ActionClearArtifact}

	case domain.EventSessionPersisted:
		t.Actions = []Action{ActionNotifyPersisted}

	default:
		return t, fmt.Errorf("%w: unknown event %q", ErrInvalidTransition, kind)
	}

	return t, nil
}

// CanDrain reports whether queue consumption is permitted in the state.
func CanDrain(state domain.State) bool {
	return state == domain.StateReady
}

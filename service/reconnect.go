package service

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Reconnect defaults for engines that report a transport disconnect.
const (
	DefaultReconnectMaxAttempts    = 5
	DefaultReconnectInitialBackoff = time.Second
	DefaultReconnectMaxBackoff     = time.Minute
)

// ReconnectPolicy bounds automatic re-initialisation after a disconnect.
type ReconnectPolicy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// NewBackOff returns a fresh exponential backoff that stops after MaxAttempts delays.
// A policy with MaxAttempts <= 0 never reconnects.
func (p ReconnectPolicy) NewBackOff() backoff.BackOff {
	if p.MaxAttempts <= 0 {
		return &backoff.StopBackOff{}
	}
	initial := p.InitialBackoff
	if initial <= 0 {
		initial = DefaultReconnectInitialBackoff
	}
	maxBackoff := p.MaxBackoff
	if maxBackoff < initial {
		maxBackoff = initial
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = initial
	exp.MaxInterval = maxBackoff
	exp.Multiplier = 2
	exp.RandomizationFactor = 0
	exp.MaxElapsedTime = 0
	exp.Reset()

	return backoff.WithMaxRetries(exp, uint64(p.MaxAttempts))
}

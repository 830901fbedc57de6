package interfaces

import "time"

// Timer is a cancellable deferred call. Stop reports whether the call was prevented;
// stopping an already fired or stopped timer is a no-op.
type Timer interface {
	Stop() bool
}

// TimeProvider supplies the current time and deferred calls.
// Injected so tests can fire pairing-expiry and reconnect timers by hand.
//
//go:generate moq -stub -out mock/time_provider.go -pkg mock . TimeProvider
type TimeProvider interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

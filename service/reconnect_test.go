package service

import (
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
)

func TestReconnectPolicy_NewBackOff(t *testing.T) {
	t.Run("exponential_and_capped", func(t *testing.T) {
		b := ReconnectPolicy{MaxAttempts: 5, InitialBackoff: time.Second, MaxBackoff: 5 * time.Second}.NewBackOff()
		assert.Equal(t, time.Second, b.NextBackOff())
		assert.Equal(t, 2*time.Second, b.NextBackOff())
		assert.Equal(t, 4*time.Second, b.NextBackOff())
		assert.Equal(t, 5*time.Second, b.NextBackOff())
		assert.Equal(t, 5*time.Second, b.NextBackOff())
		assert.Equal(t, backoff.Stop, b.NextBackOff())
	})

	t.Run("reset_restores_budget", func(t *testing.T) {
		b := ReconnectPolicy{MaxAttempts: 1, InitialBackoff: time.Second, MaxBackoff: time.Second}.NewBackOff()
		assert.Equal(t, time.Second, b.NextBackOff())
		assert.Equal(t, backoff.Stop, b.NextBackOff())
		b.Reset()
		assert.Equal(t, time.Second, b.NextBackOff())
	})

	t.Run("zero_attempts_never_reconnects", func(t *testing.T) {
		b := ReconnectPolicy{}.NewBackOff()
		assert.Equal(t, backoff.Stop, b.NextBackOff())
	})
}

package service

import (
	"testing"
	"time"

	"mysessions/helpers"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeProvider(t *testing.T) {
	assert.PanicsWithValue(t, "service.time_provider.go: now is required", func() {
		NewTimeProvider(nil)
	})

	tp := NewTimeProvider(helpers.TestNow)
	assert.Equal(t, helpers.TestNow(), tp.Now())
}

func TestTimeProvider_AfterFunc(t *testing.T) {
	tp := NewTimeProvider(time.Now)

	fired := make(chan struct{})
	tp.AfterFunc(time.Millisecond, func() { close(fired) })
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}

	stopped := tp.AfterFunc(time.Hour, func() {})
	assert.True(t, stopped.Stop())
	assert.False(t, stopped.Stop())
}

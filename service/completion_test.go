package service

import (
	"testing"

	"mysessions/domain"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
)

func TestExitPolicy_Notify(t *testing.T) {
	tests := []struct {
		name      string
		c         domain.Completion
		wantStops int
	}{
		{
			name:      "persisted_without_pending_work_stops",
			c:         domain.Completion{InstanceID: "a", Reason: domain.CompletionSessionPersisted},
			wantStops: 1,
		},
		{
			name:      "persisted_with_pending_work_waits",
			c:         domain.Completion{InstanceID: "a", Reason: domain.CompletionSessionPersisted, PendingWork: true},
			wantStops: 0,
		},
		{
			name:      "first_drain_pass_stops",
			c:         domain.Completion{InstanceID: "a", Reason: domain.CompletionQueueDrained, FirstPass: true},
			wantStops: 1,
		},
		{
			name:      "later_drain_pass_keeps_running",
			c:         domain.Completion{InstanceID: "a", Reason: domain.CompletionQueueDrained},
			wantStops: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stops := 0
			p := NewExitPolicy(func() { stops++ }, log.NewNopLogger())
			p.Notify(tt.c)
			p.Notify(tt.c)
			assert.Equal(t, tt.wantStops, stops)
		})
	}
}

func TestNewExitPolicy_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "service.completion.go: stop is required", func() {
		NewExitPolicy(nil, log.NewNopLogger())
	})
}

func TestIdlePolicy_Notify(t *testing.T) {
	assert.NotPanics(t, func() {
		NewIdlePolicy(log.NewNopLogger()).Notify(domain.Completion{InstanceID: "a", Reason: domain.CompletionQueueDrained, FirstPass: true})
	})
}

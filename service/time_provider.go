package service

import (
	"time"

	"mysessions/helpers"
	"mysessions/interfaces"
)

// timeProvider implements interfaces.TimeProvider on top of the injected now func and time.AfterFunc.
type timeProvider struct {
	now func() time.Time
}

// NewTimeProvider creates a TimeProvider. Panics on nil now.
func NewTimeProvider(now func() time.Time) interfaces.TimeProvider {
	return &timeProvider{now: helpers.NilPanic(now, "service.time_provider.go: now is required")}
}

func (t *timeProvider) Now() time.Time {
	return t.now()
}

func (t *timeProvider) AfterFunc(d time.Duration, f func()) interfaces.Timer {
	return time.AfterFunc(d, f)
}

package service

import (
	"sync"
	"time"

	"mysessions/interfaces"
)

// manualClock is a TimeProvider whose timers fire only when the test says so.
type manualClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*manualTimer
}

type manualTimer struct {
	clock    *manualClock
	deadline time.Time
	delay    time.Duration
	f        func()
	active   bool
}

func newManualClock(now time.Time) *manualClock {
	return &manualClock{now: now}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) interfaces.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{clock: c, deadline: c.now.Add(d), delay: d, f: f, active: true}
	c.timers = append(c.timers, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	was := t.active
	t.active = false
	return was
}

// Advance moves the clock forward and runs every timer that became due.
func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*manualTimer
	for _, t := range c.timers {
		if t.active && !t.deadline.After(c.now) {
			t.active = false
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

// Active returns the delays of timers that have neither fired nor been stopped.
func (c *manualClock) Active() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []time.Duration
	for _, t := range c.timers {
		if t.active {
			out = append(out, t.delay)
		}
	}
	return out
}

// Fire runs the timer as if it had expired, even when it was already stopped.
func (t *manualTimer) Fire() {
	t.clock.mu.Lock()
	t.active = false
	t.clock.mu.Unlock()
	t.f()
}

func (c *manualClock) timer(i int) *manualTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timers[i]
}

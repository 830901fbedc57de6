package service

import (
	"context"
	"sync"

	"mysessions/domain"
)

// eventMailbox is an unbounded FIFO of lifecycle events for one instance.
// A single goroutine consumes it, so events of one instance are handled in emission order
// and Push never blocks the engine callback.
type eventMailbox struct {
	mu     sync.Mutex
	queue  []domain.Event
	signal chan struct{}

	done      chan struct{}
	closeOnce sync.Once
}

func newEventMailbox() *eventMailbox {
	return &eventMailbox{
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Push enqueues the event. Events pushed after Close are dropped.
func (m *eventMailbox) Push(event domain.Event) {
	select {
	case <-m.done:
		return
	default:
	}

	m.mu.Lock()
	m.queue = append(m.queue, event)
	m.mu.Unlock()

	select {
	case m.signal <- struct{}{}:
	default:
	}
}

func (m *eventMailbox) pop() (domain.Event, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queue) == 0 {
		return domain.Event{}, false
	}
	ev := m.queue[0]
	m.queue[0] = domain.Event{}
	m.queue = m.queue[1:]
	return ev, true
}

// Run hands events to handle one at a time until Close is called.
func (m *eventMailbox) Run(handle func(domain.Event)) {
	for {
		select {
		case <-m.done:
			return
		case <-m.signal:
		}
		for {
			select {
			case <-m.done:
				return
			default:
			}
			ev, ok := m.pop()
			if !ok {
				break
			}
			handle(ev)
		}
	}
}

// Close stops Run and drops pending events. Idempotent.
func (m *eventMailbox) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
	})
}

// pairingSignal is resolved exactly once: with the rendered artifact when the first
// challenge arrives, with an empty artifact when the instance authenticates without one,
// or with an error when the instance fails or is removed.
type pairingSignal struct {
	once     sync.Once
	done     chan struct{}
	artifact string
	err      error
}

func newPairingSignal() *pairingSignal {
	return &pairingSignal{done: make(chan struct{})}
}

func (p *pairingSignal) resolve(artifact string, err error) {
	p.once.Do(func() {
		p.artifact = artifact
		p.err = err
		close(p.done)
	})
}

// Wait blocks until the signal is resolved or ctx is done.
func (p *pairingSignal) Wait(ctx context.Context) (string, error) {
	select {
	case <-p.done:
		return p.artifact, p.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

package service

import (
	"context"
	"testing"
	"time"

	"mysessions/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventMailbox_DeliversInOrder(t *testing.T) {
	mb := newEventMailbox()
	got := make(chan domain.Event, 3)
	go mb.Run(func(ev domain.Event) { got <- ev })
	defer mb.Close()

	mb.Push(domain.Event{Kind: domain.EventPairingChallenge, Challenge: "a"})
	mb.Push(domain.Event{Kind: domain.EventAuthenticated})
	mb.Push(domain.Event{Kind: domain.EventReady, Profile: "p"})

	var kinds []domain.EventKind
	for i := 0; i < 3; i++ {
		select {
		case ev := <-got:
			kinds = append(kinds, ev.Kind)
		case <-time.After(time.Second):
			t.Fatal("event not delivered")
		}
	}
	assert.Equal(t, []domain.EventKind{domain.EventPairingChallenge, domain.EventAuthenticated, domain.EventReady}, kinds)
}

func TestEventMailbox_PushAfterCloseIsDropped(t *testing.T) {
	mb := newEventMailbox()
	mb.Close()
	mb.Close()
	mb.Push(domain.Event{Kind: domain.EventReady})

	_, ok := mb.pop()
	assert.False(t, ok)

	done := make(chan struct{})
	go func() {
		mb.Run(func(domain.Event) { t.Error("handler called after close") })
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Close")
	}
}

func TestPairingSignal_ResolvesOnce(t *testing.T) {
	p := newPairingSignal()
	p.resolve("data:image/png;base64,AAA", nil)
	p.resolve("", assert.AnError)

	artifact, err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AAA", artifact)
}

func TestPairingSignal_WaitHonoursContext(t *testing.T) {
	p := newPairingSignal()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

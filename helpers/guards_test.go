package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type engine interface{ Name() string }

type fakeEngine struct{}

func (*fakeEngine) Name() string { return "fake" }

func TestStrPanic(t *testing.T) {
	assert.Equal(t, "ws-api-sessions", StrPanic("ws-api-sessions", "unused"))
	for _, blank := range []string{"", "   ", "\t\n"} {
		assert.PanicsWithValue(t, "adapters.mys3: bucket is required", func() {
			StrPanic(blank, "adapters.mys3: bucket is required")
		})
	}
}

func TestNilPanic(t *testing.T) {
	var (
		nilMap    map[string]int
		nilFunc   func()
		nilPtr    *fakeEngine
		nilChan   chan struct{}
		nilIface  engine
		typedNil  engine = nilPtr
		liveIface engine = &fakeEngine{}
	)

	tests := []struct {
		name string
		call func()
	}{
		{"nil_interface", func() { NilPanic(nilIface, "required") }},
		{"typed_nil_in_interface", func() { NilPanic(typedNil, "required") }},
		{"nil_any", func() { NilPanic[any](nil, "required") }},
		{"nil_map", func() { NilPanic(nilMap, "required") }},
		{"nil_func", func() { NilPanic(nilFunc, "required") }},
		{"nil_pointer", func() { NilPanic(nilPtr, "required") }},
		{"nil_chan", func() { NilPanic(nilChan, "required") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PanicsWithValue(t, "required", tt.call)
		})
	}

	t.Run("values_returned", func(t *testing.T) {
		assert.Same(t, liveIface, NilPanic(liveIface, "required"))
		assert.Equal(t, 0, NilPanic(0, "required"))
		assert.Equal(t, "", NilPanic("", "required"))
	})
}

func TestDurationOr(t *testing.T) {
	assert.Equal(t, 5*time.Minute, DurationOr(0, 5*time.Minute))
	assert.Equal(t, 5*time.Minute, DurationOr(-time.Second, 5*time.Minute))
	assert.Equal(t, time.Second, DurationOr(time.Second, 5*time.Minute))
}

func TestTestNow(t *testing.T) {
	assert.Equal(t, time.UTC, TestNow().Location())
	assert.Equal(t, TestNow(), TestNow())
}

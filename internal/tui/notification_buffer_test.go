package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/chime/internal/core/notify"
)

func TestToastBuffer_drain_returns_latest_snapshot(t *testing.T) {
	b := NewToastBuffer()

	b.Push([]notify.Toast{{Notification: notify.Notification{Message: "one"}}})
	b.Push([]notify.Toast{
		{Notification: notify.Notification{Message: "one"}},
		{Notification: notify.Notification{Message: "two"}},
	})

	toasts, ok := b.Drain()
	require.True(t, ok)
	assert.Len(t, toasts, 2)

	_, ok = b.Drain()
	assert.False(t, ok, "drain is empty until the next push")
}

func TestToastBuffer_signal_coalesces(t *testing.T) {
	b := NewToastBuffer()

	// Multiple pushes emit at most one pending signal.
	b.Push(nil)
	b.Push(nil)
	b.Push(nil)

	done := make(chan struct{})
	go func() {
		msg := b.WaitForSignal()()
		assert.IsType(t, drainToastsMsg{}, msg)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("signal never arrived")
	}

	select {
	case <-b.signal:
		t.Fatal("expected the signal channel to be drained")
	default:
	}
}

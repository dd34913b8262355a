package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hay-kot/chime/internal/core/notify"
)

type drainToastsMsg struct{}

// ToastBuffer bridges store subscription callbacks, which may run on any
// goroutine, into the Bubble Tea loop. Snapshots are coalesced: only the
// latest one matters, and a buffered signal channel wakes the loop.
type ToastBuffer struct {
	mu     sync.Mutex
	latest []notify.Toast
	dirty  bool
	signal chan struct{}
}

// NewToastBuffer constructs a buffer for async snapshot delivery.
func NewToastBuffer() *ToastBuffer {
	return &ToastBuffer{
		signal: make(chan struct{}, 1),
	}
}

// Push records the latest snapshot and emits a non-blocking signal.
func (b *ToastBuffer) Push(toasts []notify.Toast) {
	b.mu.Lock()
	b.latest = toasts
	b.dirty = true
	b.mu.Unlock()

	select {
	case b.signal <- struct{}{}:
	default:
	}
}

// Drain returns the most recent snapshot and whether one arrived since
// the last drain.
func (b *ToastBuffer) Drain() ([]notify.Toast, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.dirty {
		return nil, false
	}
	b.dirty = false
	return b.latest, true
}

// WaitForSignal blocks until a snapshot is ready to drain.
func (b *ToastBuffer) WaitForSignal() tea.Cmd {
	return func() tea.Msg {
		<-b.signal
		return drainToastsMsg{}
	}
}

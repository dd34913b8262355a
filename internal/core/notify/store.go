package notify

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/hay-kot/chime/pkg/randid"
)

const (
	// DefaultCapacity is the maximum number of live notifications a
	// store holds unless configured otherwise.
	DefaultCapacity = 5

	// DefaultTickInterval is fine enough for a smooth countdown
	// affordance; only the zero-crossing dismissal is deadline-relevant.
	DefaultTickInterval = 100 * time.Millisecond
)

// Toast is a render-ready view of a live notification: the record plus
// its countdown state at snapshot time.
type Toast struct {
	Notification

	Remaining time.Duration
	Paused    bool
}

// Progress returns the remaining fraction of the countdown in [0, 1].
// Sticky toasts report 1.
func (t Toast) Progress() float64 {
	if t.Sticky() {
		return 1
	}
	if t.Duration <= 0 || t.Remaining <= 0 {
		return 0
	}
	p := float64(t.Remaining) / float64(t.Duration)
	return min(p, 1)
}

// Subscriber receives an insertion-ordered snapshot after every store
// mutation. It runs inline on the mutating goroutine.
type Subscriber func([]Toast)

type entry struct {
	n         Notification
	remaining time.Duration
	paused    bool
}

// Store owns the canonical ordered set of active notifications and
// enforces capacity. All methods are safe for concurrent use; callbacks
// and subscribers are invoked outside the internal lock.
type Store struct {
	mu        sync.Mutex
	entries   []*entry
	subs      []Subscriber
	capacity  int
	durations DurationPolicy
	now       func() time.Time
	lastTick  time.Time
	idPrefix  string
	nextID    uint64
}

// StoreOption configures a Store at construction.
type StoreOption func(*Store)

// WithCapacity bounds the number of live notifications. Values below 1
// are ignored.
func WithCapacity(n int) StoreOption {
	return func(s *Store) {
		if n >= 1 {
			s.capacity = n
		}
	}
}

// WithDurations overrides the per-kind default countdowns.
func WithDurations(p DurationPolicy) StoreOption {
	return func(s *Store) { s.durations = p }
}

// WithClock injects the time source. Tests use this to drive the
// countdown deterministically.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// New constructs an empty store.
func New(opts ...StoreOption) *Store {
	s := &Store{
		capacity:  DefaultCapacity,
		durations: DefaultDurations(),
		now:       time.Now,
		idPrefix:  randid.Generate(4),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lastTick = s.now()
	return s
}

// Durations returns the store's countdown policy.
func (s *Store) Durations() DurationPolicy {
	return s.durations
}

// Len returns the number of live notifications.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Push appends a notification and returns its ID. The countdown
// defaults to the policy duration for kind; options may override any
// field. When the store is over capacity the oldest notification is
// evicted first, firing its OnDismiss.
//
// An empty message is dropped silently and returns an empty ID;
// notification delivery is advisory, never load-bearing.
func (s *Store) Push(kind Kind, message string, opts ...Option) string {
	if message == "" {
		return ""
	}

	s.mu.Lock()

	// A stale lastTick from an idle period must not count against the
	// first notification of a new burst.
	if len(s.entries) == 0 {
		s.lastTick = s.now()
	}

	s.nextID++
	n := Notification{
		ID:        fmt.Sprintf("%s-%d", s.idPrefix, s.nextID),
		Kind:      kind,
		Message:   message,
		Duration:  s.durations.For(kind),
		CreatedAt: s.now(),
	}
	for _, opt := range opts {
		opt(&n)
	}

	s.entries = append(s.entries, &entry{n: n, remaining: n.Duration})

	var evicted []*entry
	if over := len(s.entries) - s.capacity; over > 0 {
		evicted = s.entries[:over]
		s.entries = slices.Clone(s.entries[over:])
	}

	subs, snap := s.observersLocked()
	s.mu.Unlock()

	fireDismiss(evicted)
	fanout(subs, snap)
	return n.ID
}

// Dismiss removes the notification with the given id, firing its
// OnDismiss exactly once. Absent IDs are a silent no-op; acting on a
// stale reference is an expected, benign race.
func (s *Store) Dismiss(id string) {
	s.mu.Lock()
	e := s.removeLocked(id)
	if e == nil {
		s.mu.Unlock()
		return
	}
	subs, snap := s.observersLocked()
	s.mu.Unlock()

	fireDismiss([]*entry{e})
	fanout(subs, snap)
}

// DismissAll removes every live notification, firing each OnDismiss once.
func (s *Store) DismissAll() {
	s.mu.Lock()
	removed := s.entries
	s.entries = nil
	if len(removed) == 0 {
		s.mu.Unlock()
		return
	}
	subs, snap := s.observersLocked()
	s.mu.Unlock()

	fireDismiss(removed)
	fanout(subs, snap)
}

// Update merges options into the live record with the given id. Absent
// IDs are a no-op; a dismissed notification is never resurrected. An
// update that changes Duration restarts the countdown from the new
// value and clears any pause.
func (s *Store) Update(id string, opts ...Option) {
	s.mu.Lock()
	e := s.findLocked(id)
	if e == nil {
		s.mu.Unlock()
		return
	}

	prev := e.n.Duration
	for _, opt := range opts {
		opt(&e.n)
	}
	e.n.ID = id // updates never change identity
	if e.n.Duration != prev {
		e.remaining = e.n.Duration
		e.paused = false
	}

	subs, snap := s.observersLocked()
	s.mu.Unlock()
	fanout(subs, snap)
}

// Pause freezes the countdown of the given notification. Sticky
// notifications have no countdown, so pausing them is a no-op.
func (s *Store) Pause(id string) {
	s.setPaused(id, true)
}

// Resume continues a paused countdown from its frozen remaining value.
func (s *Store) Resume(id string) {
	s.setPaused(id, false)
}

// TogglePause flips the pause state of the given notification.
func (s *Store) TogglePause(id string) {
	s.mu.Lock()
	e := s.findLocked(id)
	if e == nil || e.n.Sticky() {
		s.mu.Unlock()
		return
	}
	e.paused = !e.paused
	subs, snap := s.observersLocked()
	s.mu.Unlock()
	fanout(subs, snap)
}

func (s *Store) setPaused(id string, paused bool) {
	s.mu.Lock()
	e := s.findLocked(id)
	if e == nil || e.n.Sticky() || e.paused == paused {
		s.mu.Unlock()
		return
	}
	e.paused = paused
	subs, snap := s.observersLocked()
	s.mu.Unlock()
	fanout(subs, snap)
}

// Activate invokes the notification's action (at most once) and then
// dismisses it. Notifications without an action are simply dismissed.
func (s *Store) Activate(id string) {
	s.mu.Lock()
	e := s.removeLocked(id)
	if e == nil {
		s.mu.Unlock()
		return
	}
	subs, snap := s.observersLocked()
	s.mu.Unlock()

	if e.n.Action != nil && e.n.Action.Invoke != nil {
		e.n.Action.Invoke()
	}
	fireDismiss([]*entry{e})
	fanout(subs, snap)
}

// Tick advances every unpaused, non-sticky countdown by the wall time
// elapsed since the previous tick, removing notifications that reach
// zero. Removal is idempotent with a concurrent Dismiss: whichever path
// detaches the entry first is the only one that fires OnDismiss.
func (s *Store) Tick(now time.Time) {
	s.mu.Lock()
	elapsed := now.Sub(s.lastTick)
	s.lastTick = now
	if elapsed <= 0 || len(s.entries) == 0 {
		s.mu.Unlock()
		return
	}

	var expired []*entry
	alive := s.entries[:0]
	for _, e := range s.entries {
		if !e.paused && !e.n.Sticky() {
			e.remaining -= elapsed
			if e.remaining <= 0 {
				e.remaining = 0
				expired = append(expired, e)
				continue
			}
		}
		alive = append(alive, e)
	}
	s.entries = alive

	if len(expired) == 0 {
		s.mu.Unlock()
		return
	}
	subs, snap := s.observersLocked()
	s.mu.Unlock()

	fireDismiss(expired)
	fanout(subs, snap)
}

// Run drives Tick on a wall-clock ticker until ctx is done. The TUI
// drives ticks itself; Run is for headless embedders.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			s.Tick(now)
		}
	}
}

// List returns an insertion-ordered snapshot of the live notifications.
func (s *Store) List() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers a callback invoked with a fresh snapshot after
// every mutation. Countdown progress between mutations is observed by
// polling List, not via subscription.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) findLocked(id string) *entry {
	for _, e := range s.entries {
		if e.n.ID == id {
			return e
		}
	}
	return nil
}

func (s *Store) removeLocked(id string) *entry {
	for i, e := range s.entries {
		if e.n.ID == id {
			s.entries = slices.Delete(s.entries, i, i+1)
			return e
		}
	}
	return nil
}

func (s *Store) snapshotLocked() []Toast {
	out := make([]Toast, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, Toast{Notification: e.n, Remaining: e.remaining, Paused: e.paused})
	}
	return out
}

func (s *Store) observersLocked() ([]Subscriber, []Toast) {
	return slices.Clone(s.subs), s.snapshotLocked()
}

func fireDismiss(entries []*entry) {
	for _, e := range entries {
		if e.n.OnDismiss != nil {
			e.n.OnDismiss()
		}
	}
}

func fanout(subs []Subscriber, snap []Toast) {
	for _, fn := range subs {
		fn(snap)
	}
}

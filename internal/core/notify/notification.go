// Package notify implements the in-process toast notification core: an
// ordered, capacity-bounded store with per-notification countdowns, a
// lifecycle tracker that binds an asynchronous operation to a single
// notification, and a process-wide dispatch facade.
package notify

import "time"

// Kind classifies a notification for styling and default durations.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
	// KindPending marks an operation still in flight. Pending
	// notifications never auto-dismiss until the tracker settles them.
	KindPending Kind = "pending"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindSuccess, KindError, KindWarning, KindInfo, KindPending:
		return true
	}
	return false
}

// DurationSticky disables the auto-dismiss countdown entirely.
const DurationSticky time.Duration = -1

// Action is a user-activatable callback attached to a notification.
// Invoke runs at most once; activating it also dismisses the notification.
type Action struct {
	Label  string
	Invoke func()
}

// Notification is a single user-visible message unit owned by a Store.
type Notification struct {
	ID      string
	Kind    Kind
	Title   string
	Message string

	// Duration is the auto-dismiss countdown installed at insertion.
	// DurationSticky means the notification stays until dismissed.
	Duration time.Duration

	Action *Action

	// OnDismiss fires exactly once when the notification leaves the
	// store, regardless of cause: expiry, manual dismissal, action
	// activation, or capacity eviction.
	OnDismiss func()

	CreatedAt time.Time
}

// Sticky reports whether the notification has no countdown.
func (n Notification) Sticky() bool { return n.Duration < 0 }

// Option mutates a notification at insert or update time. Updates apply
// options to the live record, so an option that changes Duration also
// restarts the countdown.
type Option func(*Notification)

// WithTitle sets the optional title line.
func WithTitle(title string) Option {
	return func(n *Notification) { n.Title = title }
}

// WithKind overrides the notification kind.
func WithKind(k Kind) Option {
	return func(n *Notification) { n.Kind = k }
}

// WithMessage replaces the message body.
func WithMessage(msg string) Option {
	return func(n *Notification) { n.Message = msg }
}

// WithDuration overrides the auto-dismiss countdown.
func WithDuration(d time.Duration) Option {
	return func(n *Notification) { n.Duration = d }
}

// WithSticky disables auto-dismissal.
func WithSticky() Option {
	return func(n *Notification) { n.Duration = DurationSticky }
}

// WithAction attaches an activatable callback.
func WithAction(label string, fn func()) Option {
	return func(n *Notification) { n.Action = &Action{Label: label, Invoke: fn} }
}

// WithOnDismiss registers the removal callback.
func WithOnDismiss(fn func()) Option {
	return func(n *Notification) { n.OnDismiss = fn }
}

// DurationPolicy holds per-kind default countdowns. Errors must remain
// visible longer than successes.
type DurationPolicy struct {
	Success time.Duration
	Error   time.Duration
	Warning time.Duration
	Info    time.Duration
}

// DefaultDurations returns the stock policy: errors 6s, warnings 5s,
// success and info 4s.
func DefaultDurations() DurationPolicy {
	return DurationPolicy{
		Success: 4 * time.Second,
		Error:   6 * time.Second,
		Warning: 5 * time.Second,
		Info:    4 * time.Second,
	}
}

// For returns the default countdown for a kind. Pending is always sticky.
func (p DurationPolicy) For(k Kind) time.Duration {
	switch k {
	case KindSuccess:
		return p.Success
	case KindError:
		return p.Error
	case KindWarning:
		return p.Warning
	case KindPending:
		return DurationSticky
	default:
		return p.Info
	}
}

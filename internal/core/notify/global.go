package notify

import (
	"context"
	"fmt"
	"sync/atomic"
)

// The dispatch facade is a process-wide entry point for code with no
// direct store access. It binds to at most one live store; calls made
// before Bind (or after Unbind) are dropped silently and return an empty
// ID, because notification delivery is best-effort, never a correctness
// path.

var global atomic.Pointer[Store]

// Bind registers s as the store behind the package-level functions.
// The presentation layer calls this once at startup.
func Bind(s *Store) {
	global.Store(s)
}

// Unbind detaches the bound store and dismisses everything still alive
// on it, cancelling all countdowns and firing each OnDismiss once.
func Unbind() {
	if s := global.Swap(nil); s != nil {
		s.DismissAll()
	}
}

// Bound returns the currently bound store, or nil.
func Bound() *Store {
	return global.Load()
}

// Success shows a success toast and returns its ID.
func Success(message string, opts ...Option) string {
	return push(KindSuccess, message, opts)
}

// Error shows an error toast and returns its ID.
func Error(message string, opts ...Option) string {
	return push(KindError, message, opts)
}

// Warning shows a warning toast and returns its ID.
func Warning(message string, opts ...Option) string {
	return push(KindWarning, message, opts)
}

// Info shows an info toast and returns its ID.
func Info(message string, opts ...Option) string {
	return push(KindInfo, message, opts)
}

// Loading shows a sticky pending toast and returns its ID. The caller
// settles or dismisses it via Update/Dismiss.
func Loading(message string, opts ...Option) string {
	return push(KindPending, message, opts)
}

// Errorf is Error with Sprintf formatting.
func Errorf(format string, args ...any) string {
	return Error(fmt.Sprintf(format, args...))
}

// Warnf is Warning with Sprintf formatting.
func Warnf(format string, args ...any) string {
	return Warning(fmt.Sprintf(format, args...))
}

// Infof is Info with Sprintf formatting.
func Infof(format string, args ...any) string {
	return Info(fmt.Sprintf(format, args...))
}

// Dismiss removes a toast by ID. Unbound or stale IDs are a no-op.
func Dismiss(id string) {
	if s := Bound(); s != nil {
		s.Dismiss(id)
	}
}

// Update merges options into a live toast. Unbound or stale IDs are a
// no-op.
func Update(id string, opts ...Option) {
	if s := Bound(); s != nil {
		s.Update(id, opts...)
	}
}

// Promise tracks op on the bound store. When no store is bound the
// operation still runs and its outcome is returned unchanged.
func Promise[T any](ctx context.Context, msgs TrackMessages[T], op func(context.Context) (T, error)) (T, error) {
	return Track(ctx, Bound(), msgs, op)
}

func push(kind Kind, message string, opts []Option) string {
	s := Bound()
	if s == nil {
		return ""
	}
	return s.Push(kind, message, opts...)
}

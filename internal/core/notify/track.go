package notify

import "context"

// TrackMessages configures the three visible phases of a tracked
// operation. SuccessFunc and ErrorFunc, when set, take precedence over
// the fixed strings.
type TrackMessages[T any] struct {
	Loading string

	Success     string
	SuccessFunc func(T) string

	Error     string
	ErrorFunc func(error) string
}

func (m TrackMessages[T]) successMessage(v T) string {
	if m.SuccessFunc != nil {
		return m.SuccessFunc(v)
	}
	return m.Success
}

func (m TrackMessages[T]) errorMessage(err error) string {
	if m.ErrorFunc != nil {
		return m.ErrorFunc(err)
	}
	if m.Error != "" {
		return m.Error
	}
	return err.Error()
}

// Track binds the life of op to a single notification: a pending toast
// showing msgs.Loading appears immediately, and when op settles the same
// toast transitions exactly once to success or error with a fresh
// countdown from the settlement instant. The operation's outcome is
// returned unchanged; Track never swallows the error.
//
// If the toast is dismissed before op settles, the settlement update is
// a no-op and the operation still runs to completion. A nil store runs
// op with no notification at all.
func Track[T any](ctx context.Context, s *Store, msgs TrackMessages[T], op func(context.Context) (T, error)) (T, error) {
	if s == nil {
		return op(ctx)
	}

	id := s.Push(KindPending, msgs.Loading)

	v, err := op(ctx)
	if err != nil {
		s.Update(id,
			WithKind(KindError),
			WithMessage(msgs.errorMessage(err)),
			WithDuration(s.Durations().Error),
		)
		return v, err
	}

	s.Update(id,
		WithKind(KindSuccess),
		WithMessage(msgs.successMessage(v)),
		WithDuration(s.Durations().Success),
	)
	return v, nil
}

package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrack_shows_pending_while_in_flight(t *testing.T) {
	s, _ := testStore()

	var inFlight []Toast
	_, err := Track(context.Background(), s, TrackMessages[string]{
		Loading: "Loading…",
		Success: "Loaded!",
	}, func(_ context.Context) (string, error) {
		inFlight = s.List()
		return "ok", nil
	})

	require.NoError(t, err)
	require.Len(t, inFlight, 1)
	assert.Equal(t, KindPending, inFlight[0].Kind)
	assert.Equal(t, "Loading…", inFlight[0].Message)
	assert.True(t, inFlight[0].Sticky())
}

func TestTrack_success_settles_once_with_fresh_countdown(t *testing.T) {
	s, now := testStore()

	// Consume time while the operation is "in flight" so a countdown
	// started at insertion would already be partially spent.
	v, err := Track(context.Background(), s, TrackMessages[int]{
		Loading: "Loading…",
		Success: "Loaded!",
	}, func(_ context.Context) (int, error) {
		*now = now.Add(10 * time.Second)
		s.Tick(*now)
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, v)

	toasts := s.List()
	require.Len(t, toasts, 1)
	assert.Equal(t, KindSuccess, toasts[0].Kind)
	assert.Equal(t, "Loaded!", toasts[0].Message)
	assert.Equal(t, DefaultDurations().Success, toasts[0].Remaining,
		"countdown measured from settlement, not insertion")
}

func TestTrack_success_formatter(t *testing.T) {
	s, _ := testStore()

	_, err := Track(context.Background(), s, TrackMessages[string]{
		Loading:     "fetching user",
		SuccessFunc: func(name string) string { return "welcome, " + name },
	}, func(_ context.Context) (string, error) {
		return "ada", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "welcome, ada", s.List()[0].Message)
}

func TestTrack_failure_resurfaces_error(t *testing.T) {
	s, _ := testStore()

	boom := errors.New("connection reset")
	_, err := Track(context.Background(), s, TrackMessages[string]{
		Loading: "uploading",
		Error:   "Failed",
	}, func(_ context.Context) (string, error) {
		return "", boom
	})

	require.ErrorIs(t, err, boom, "tracked error must reach the caller unchanged")

	toasts := s.List()
	require.Len(t, toasts, 1)
	assert.Equal(t, KindError, toasts[0].Kind)
	assert.Equal(t, "Failed", toasts[0].Message)
	assert.Equal(t, DefaultDurations().Error, toasts[0].Remaining)
	assert.Greater(t, DefaultDurations().Error, DefaultDurations().Success,
		"errors stay visible longer than successes")
}

func TestTrack_failure_default_message_is_error_text(t *testing.T) {
	s, _ := testStore()

	_, err := Track(context.Background(), s, TrackMessages[string]{
		Loading: "working",
	}, func(_ context.Context) (string, error) {
		return "", errors.New("disk full")
	})

	require.Error(t, err)
	assert.Equal(t, "disk full", s.List()[0].Message)
}

func TestTrack_dismissed_mid_flight_not_resurrected(t *testing.T) {
	s, _ := testStore()

	v, err := Track(context.Background(), s, TrackMessages[string]{
		Loading: "working",
		Success: "done",
	}, func(_ context.Context) (string, error) {
		// The user dismisses the pending toast before settlement.
		require.Len(t, s.List(), 1)
		s.Dismiss(s.List()[0].ID)
		return "late", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "late", v, "settlement still reaches the caller")
	assert.Zero(t, s.Len(), "late update must not reinstate the toast")
}

func TestTrack_nil_store_runs_operation(t *testing.T) {
	v, err := Track(context.Background(), nil, TrackMessages[int]{}, func(_ context.Context) (int, error) {
		return 7, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_unbound_calls_are_silent_noops(t *testing.T) {
	t.Cleanup(Unbind)
	Unbind()

	assert.Empty(t, Success("s"))
	assert.Empty(t, Error("e"))
	assert.Empty(t, Warning("w"))
	assert.Empty(t, Info("i"))
	assert.Empty(t, Loading("l"))

	// Must not panic.
	Dismiss("anything")
	Update("anything", WithMessage("x"))
}

func TestFacade_bound_dispatches_to_store(t *testing.T) {
	t.Cleanup(Unbind)

	s, _ := testStore()
	Bind(s)

	id := Success("saved")
	require.NotEmpty(t, id)
	Infof("%d items", 3)

	toasts := s.List()
	require.Len(t, toasts, 2)
	assert.Equal(t, KindSuccess, toasts[0].Kind)
	assert.Equal(t, "3 items", toasts[1].Message)

	Dismiss(id)
	assert.Equal(t, 1, s.Len())
}

func TestFacade_loading_is_sticky_pending(t *testing.T) {
	t.Cleanup(Unbind)

	s, _ := testStore()
	Bind(s)

	Loading("working")

	toasts := s.List()
	require.Len(t, toasts, 1)
	assert.Equal(t, KindPending, toasts[0].Kind)
	assert.True(t, toasts[0].Sticky())
}

func TestFacade_unbind_dismisses_everything(t *testing.T) {
	s, _ := testStore()
	Bind(s)

	dismissed := 0
	Success("a", WithOnDismiss(func() { dismissed++ }))
	Loading("b", WithOnDismiss(func() { dismissed++ }))

	Unbind()

	assert.Nil(t, Bound())
	assert.Zero(t, s.Len())
	assert.Equal(t, 2, dismissed)
}

func TestFacade_promise_unbound_still_settles(t *testing.T) {
	t.Cleanup(Unbind)
	Unbind()

	boom := errors.New("nope")
	_, err := Promise(context.Background(), TrackMessages[string]{Loading: "x"}, func(_ context.Context) (string, error) {
		return "", boom
	})

	require.ErrorIs(t, err, boom)
}

func TestFacade_promise_bound_tracks(t *testing.T) {
	t.Cleanup(Unbind)

	s, _ := testStore()
	Bind(s)

	v, err := Promise(context.Background(), TrackMessages[string]{
		Loading: "Loading…",
		Success: "Loaded!",
	}, func(_ context.Context) (string, error) {
		return "user", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "user", v)
	require.Len(t, s.List(), 1)
	assert.Equal(t, "Loaded!", s.List()[0].Message)
}

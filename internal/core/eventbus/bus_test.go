package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_Publish_reaches_all_subscribers(t *testing.T) {
	b := NewBus()

	var got []string
	b.Subscribe(func(e Event) { got = append(got, "a:"+e.Topic) })
	b.Subscribe(func(e Event) { got = append(got, "b:"+e.Topic) })

	b.Publish(Event{Topic: "sync/done", Message: "synced"})

	assert.Equal(t, []string{"a:sync/done", "b:sync/done"}, got)
}

func TestBus_Publish_sets_timestamp(t *testing.T) {
	b := NewBus()

	var got Event
	b.Subscribe(func(e Event) { got = e })

	b.Publish(Event{Topic: "x", Message: "y"})

	require.False(t, got.At.IsZero())
}

func TestBus_Publish_no_subscribers(t *testing.T) {
	b := NewBus()
	b.Publish(Event{Topic: "void", Message: "nobody listens"}) // must not panic
}

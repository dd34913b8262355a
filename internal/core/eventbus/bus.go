// Package eventbus provides a synchronous in-process event bus and a
// router that maps event topics to user-facing notifications.
package eventbus

import (
	"sync"
	"time"
)

// Event is a domain occurrence published on the bus. Topic is a
// slash-separated path ("sync/artifacts/pushed") used for routing.
type Event struct {
	Topic   string
	Message string
	At      time.Time
}

// Handler is invoked inline for every published event.
type Handler func(Event)

// Bus dispatches events to subscribers synchronously on the publisher's
// goroutine.
type Bus struct {
	mu       sync.Mutex
	handlers []Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for all events.
func (b *Bus) Subscribe(fn Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, fn)
}

// Publish dispatches e to every subscriber.
func (b *Bus) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	b.mu.Lock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.Unlock()

	for _, fn := range handlers {
		fn(e)
	}
}

package scanner

import "sync"

// Handler receives key events from a Source.
type Handler func(ev *KeyEvent)

// Source is a stream of key events that handlers can attach to and detach from.
type Source interface {
	Subscribe(h Handler) (unsubscribe func())
}

// Hub is the application-wide key stream. Key sources publish into it and
// decoders or screens subscribe to it. Handlers run synchronously in
// subscription order on the publishing goroutine.
type Hub struct {
	mu     sync.Mutex
	nextID uint64
	subs   []subscription
}

type subscription struct {
	id uint64
	fn Handler
}

// NewHub creates an empty key stream.
func NewHub() *Hub {
	return &Hub{}
}

// Subscribe attaches h and returns a function that detaches it.
// The returned function is safe to call more than once.
func (h *Hub) Subscribe(fn Handler) func() {
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, subscription{id: id, fn: fn})
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { h.remove(id) })
	}
}

func (h *Hub) remove(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, s := range h.subs {
		if s.id == id {
			h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers ev to every current subscriber. A handler that unsubscribes
// during delivery does not affect handlers already selected for this event.
func (h *Hub) Publish(ev *KeyEvent) {
	h.mu.Lock()
	subs := make([]subscription, len(h.subs))
	copy(subs, h.subs)
	h.mu.Unlock()

	for _, s := range subs {
		s.fn(ev)
	}
}

// Len returns the number of attached handlers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

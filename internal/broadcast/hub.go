package broadcast

import (
	"sync"

	"github.com/google/uuid"
)

// Subscriber is one connected listener. Ch is closed on Unsubscribe.
type Subscriber struct {
	ID string
	Ch chan Event
}

// Hub is the in-process Broker. Publishes use a non-blocking send per
// subscriber: a slow client drops events instead of stalling the write path.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]*Subscriber
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]*Subscriber)}
}

func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{
		ID: uuid.NewString(),
		Ch: make(chan Event, 16),
	}
	h.mu.Lock()
	h.subs[sub.ID] = sub
	h.mu.Unlock()
	return sub
}

func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[sub.ID]; !ok {
		return
	}
	delete(h.subs, sub.ID)
	close(sub.Ch)
}

func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subs {
		select {
		case sub.Ch <- event:
		default:
		}
	}
}

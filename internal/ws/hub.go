package ws

import (
	"sync"

	"go.uber.org/zap"
)

const (
	EventInit   = "init"
	EventUpdate = "update"
)

// Event is one message pushed to board viewers.
type Event struct {
	Type string      `json:"event"`
	Data interface{} `json:"data"`
}

type Subscriber struct {
	ch     chan Event
	closed bool
}

func (s *Subscriber) Events() <-chan Event {
	return s.ch
}

// Hub fans events out to subscribers. Broadcast never waits on a slow
// viewer: a subscriber whose buffer is full is dropped on the spot.
type Hub struct {
	mu     sync.Mutex
	subs   map[*Subscriber]struct{}
	buffer int
	log    *zap.Logger
}

func NewHub(buffer int, log *zap.Logger) *Hub {
	if buffer <= 0 {
		buffer = 8
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		subs:   make(map[*Subscriber]struct{}),
		buffer: buffer,
		log:    log,
	}
}

func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{ch: make(chan Event, h.buffer)}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

// Unsubscribe is safe to call more than once and after the hub pruned sub.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.drop(sub)
}

// Broadcast returns the number of subscribers the event was queued for.
func (h *Hub) Broadcast(ev Event) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for sub := range h.subs {
		select {
		case sub.ch <- ev:
			delivered++
		default:
			h.drop(sub)
			h.log.Info("dropped slow subscriber", zap.String("event", ev.Type))
		}
	}
	return delivered
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// drop requires h.mu.
func (h *Hub) drop(sub *Subscriber) {
	if sub.closed {
		return
	}
	sub.closed = true
	delete(h.subs, sub)
	close(sub.ch)
}

package websocket

import (
	"sync"

	"github.com/google/uuid"
	"github.com/openride/openride/internal/pkg/logger"
)

// Notification is one realtime frame delivered to a client connection
type Notification struct {
	UserID  uuid.UUID   `json:"user_id"`
	Kind    string      `json:"kind"`
	Payload interface{} `json:"payload,omitempty"`
}

// Hub is the process-wide notification fan-out. It is constructed once at
// startup and closed at shutdown. Every published notification is delivered
// to every subscriber; each subscriber filters to its own user id.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Notification]struct{}
	buffer      int
	closed      bool
}

// NewHub creates a hub whose subscribers buffer up to buffer notifications
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 1024
	}
	return &Hub{
		subscribers: make(map[chan Notification]struct{}),
		buffer:      buffer,
	}
}

// Publish fans a notification out to all subscribers. It is fire-and-forget:
// it never blocks and never returns an error. When a subscriber's buffer is
// full the notification is dropped for that subscriber.
func (h *Hub) Publish(userID uuid.UUID, kind string, payload interface{}) {
	n := Notification{UserID: userID, Kind: kind, Payload: payload}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}

	for ch := range h.subscribers {
		select {
		case ch <- n:
		default:
			logger.Warn("Dropping notification for slow subscriber",
				logger.String("user_id", userID.String()),
				logger.String("kind", kind))
		}
	}
}

// Subscribe registers a new subscriber and returns its channel together
// with a cancel function. The channel receives every published
// notification; callers filter by user id.
func (h *Hub) Subscribe() (<-chan Notification, func()) {
	ch := make(chan Notification, h.buffer)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subscribers[ch]; ok {
			delete(h.subscribers, ch)
			close(ch)
		}
	}
	return ch, cancel
}

// Close shuts the hub down and closes all subscriber channels
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for ch := range h.subscribers {
		delete(h.subscribers, ch)
		close(ch)
	}
}

// Package telemetry serves simulation snapshots over HTTP and websockets so an
// external viewer can follow a running demo.
package telemetry

import (
	"encoding/json"
	"fmt"
	"sync"

	"bounce-demo/internal/sim"
)

// sendBuffer is how many frames a client may fall behind before frames are dropped.
const sendBuffer = 8

// client is one websocket subscriber.
type client struct {
	send chan []byte
}

// Hub holds the latest published snapshot and fans it out to subscribers.
type Hub struct {
	mu      sync.RWMutex
	latest  []byte
	clients map[*client]struct{}
	dropped int
	logf    func(format string, args ...any)
}

// NewHub creates an empty Hub. logf may be nil.
func NewHub(logf func(format string, args ...any)) *Hub {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		logf:    logf,
	}
}

// Publish encodes snap, stores it as the latest frame and queues it for every client.
// A client whose buffer is full misses this frame.
func (h *Hub) Publish(snap sim.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = data
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.dropped++
		}
	}
	return nil
}

// Latest returns the most recent encoded snapshot, or nil before the first Publish.
func (h *Hub) Latest() []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest
}

// Clients returns the number of connected subscribers.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Dropped returns how many frames were skipped for slow clients.
func (h *Hub) Dropped() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.dropped
}

// subscribe registers a client and primes it with the latest frame, if any.
func (h *Hub) subscribe() *client {
	c := &client{send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.latest != nil {
		c.send <- h.latest
	}
	h.clients[c] = struct{}{}
	return c
}

// unsubscribe removes c and closes its channel. Safe to call twice.
func (h *Hub) unsubscribe(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// closeAll disconnects every subscriber.
func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

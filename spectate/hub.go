// Package spectate streams game snapshots to websocket clients.
package spectate

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"termtris-local/types"
)

type Hub struct {
	mu        sync.Mutex
	clients   map[*Client]struct{}
	broadcast chan types.Snapshot
	latest    []byte
	snapshot  []byte
}

type Client struct {
	send chan []byte
}

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*Client]struct{}),
		broadcast: make(chan types.Snapshot, 16),
	}
}

// Publish queues a snapshot for broadcast. It never blocks; a full queue
// drops the snapshot.
func (h *Hub) Publish(s types.Snapshot) {
	select {
	case h.broadcast <- s:
	default:
	}
}

func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case s := <-h.broadcast:
			payload, err := json.Marshal(s)
			if err != nil {
				log.Warn().Err(err).Msg("encode-snapshot")
				continue
			}
			msg := mustMarshal(wsMessage{Type: "snapshot", Payload: payload})
			h.mu.Lock()
			h.latest = msg
			h.snapshot = payload
			for client := range h.clients {
				client.trySend(msg)
			}
			h.mu.Unlock()
		}
	}
}

// Register adds a client and queues the latest snapshot for it.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	if h.latest != nil {
		c.trySend(h.latest)
	}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (h *Hub) HasClients() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients) > 0
}

// Latest returns the most recently broadcast snapshot as JSON, or nil.
func (h *Hub) Latest() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshot
}

func (c *Client) trySend(data []byte) {
	select {
	case c.send <- data:
	default:
	}
}

func mustMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

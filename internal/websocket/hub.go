package websocket

import (
	"sync"

	"github.com/heversonalves/canon/internal/pkg/logger"
)

// Hub fans session update events out to every connected study view. There is
// one session per user context, so the feed is a plain broadcast; clients
// re-render from whatever canonical session arrives.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("Hub", "Study view connected", map[string]interface{}{"clients": count})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("Hub", "Study view disconnected", map[string]interface{}{"clients": count})
		}
	}
}

// Broadcast sends a wire-ready payload to all connected clients.
func (h *Hub) Broadcast(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.Send <- payload:
		default:
			// Slow consumer; drop it rather than block the feed.
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

package notify

import (
	"encoding/json"
	"sync"

	"structura/internal/logger"
)

// Hub fans reminder alerts out to every connected websocket client. It is
// broadcast-only; clients never send application messages.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	logger.Debug("notify client connected", "clients", h.ClientCount())
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

type alertMessage struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Reminder `json:"task"`
}

// Notify broadcasts the reminder to all connected clients. A client whose
// send buffer is full is dropped rather than blocking the sweep.
func (h *Hub) Notify(r Reminder) {
	msg, err := json.Marshal(alertMessage{
		Type:     "reminder",
		Title:    Title,
		Body:     r.Body(),
		Reminder: r,
	})
	if err != nil {
		return
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- msg:
		default:
			logger.Warn("notify client too slow, dropping")
			c.close()
		}
	}
}

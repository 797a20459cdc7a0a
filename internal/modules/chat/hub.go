package chat

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans incoming chat messages out to connected support staff. Guests
// post over HTTP; staff watch the stream over a websocket.
type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[userID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[userID] = conn
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[userID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, userID)
	}
}

// Broadcast pushes the message to every connected staff member. Writes that
// fail drop the connection.
func (h *Hub) Broadcast(message interface{}) {
	h.mutex.RLock()
	staff := make(map[int64]*websocket.Conn, len(h.connections))
	for id, conn := range h.connections {
		staff[id] = conn
	}
	h.mutex.RUnlock()

	for id, conn := range staff {
		if conn == nil {
			continue
		}
		if err := conn.WriteJSON(message); err != nil {
			h.Unregister(id)
		}
	}
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, userID)
	}
}

package feed

import (
	"sync"

	"realty/internal/domain"

	"github.com/gorilla/websocket"
)

// Hub pushes registry events to connected observers. It implements the
// registry's EventSink, so wiring it next to the audit sinks gives
// operators a live view of the same stream the logs persist.
type Hub struct {
	mutex       sync.RWMutex
	connections map[int64]*websocket.Conn
	nextID      int64
}

func NewHub() *Hub {
	return &Hub{connections: make(map[int64]*websocket.Conn)}
}

func (h *Hub) Register(conn *websocket.Conn) int64 {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.nextID++
	h.connections[h.nextID] = conn
	return h.nextID
}

func (h *Hub) Unregister(id int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[id]; exists {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, id)
	}
}

func (h *Hub) Publish(e domain.Event) {
	h.mutex.RLock()
	conns := make(map[int64]*websocket.Conn, len(h.connections))
	for id, conn := range h.connections {
		conns[id] = conn
	}
	h.mutex.RUnlock()

	for id, conn := range conns {
		if err := conn.WriteJSON(e); err != nil {
			h.Unregister(id)
		}
	}
}

func (h *Hub) ObserverCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, id)
	}
}

// Package ws pushes entry events to connected frontends so the note list
// updates without polling.
package ws

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"cortex/internal/logger"
	"cortex/internal/notes"
)

// Event is the wire message broadcast to every client.
type Event struct {
	Type  string       `json:"type"`
	Entry *notes.Entry `json:"entry,omitempty"`
}

// Hub fans entry events out to all connected websocket clients. Broadcast is
// safe from any goroutine; delivery happens on the Run loop.
type Hub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan Event
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	logger     logger.Logger
	mu         sync.RWMutex
}

func NewHub(log logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Event, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		logger:     log,
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for conn := range h.clients {
				conn.Close()
				delete(h.clients, conn)
			}
			h.mu.Unlock()
			return

		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(event); err != nil {
					h.logger.Debug(ctx, "Websocket write failed: %v", err)
					delete(h.clients, conn)
					conn.Close()
				}
			}
			h.mu.Unlock()
		}
	}
}

// EntryCreated announces a freshly persisted note. Best effort: when the
// buffer is full the event is dropped rather than blocking the pipeline.
func (h *Hub) EntryCreated(entry *notes.Entry) {
	select {
	case h.broadcast <- Event{Type: "entry_created", Entry: entry}:
	default:
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.register <- conn
}

// Serve reads and discards client messages until the connection drops,
// keeping the connection registered for broadcasts in the meantime.
func (h *Hub) Serve(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

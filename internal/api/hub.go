// WebSocket hub for pushing tick snapshots to observers. The hub keeps the
// set of connected clients and fans broadcast messages out to all of them;
// a client whose send buffer fills up is assumed gone and dropped.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// Envelope is the JSON frame sent over the socket.
type Envelope struct {
	Type    string `json:"type"` // "tick"
	Payload any    `json:"payload"`
}

// Hub maintains the set of active observer connections.
type Hub struct {
	clients    map[*wsClient]bool
	broadcast  chan []byte
	register   chan *wsClient
	unregister chan *wsClient
}

type wsClient struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates an empty hub. Run it in a goroutine.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*wsClient]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
	}
}

// Run is the hub event loop. Blocks.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			slog.Debug("observer connected", "clients", len(h.clients))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Slow consumer — drop it.
					close(c.send)
					delete(h.clients, c)
				}
			}
		}
	}
}

// Broadcast marshals an envelope and queues it for all clients.
func (h *Hub) Broadcast(typ string, payload any) {
	msg, err := json.Marshal(Envelope{Type: typ, Payload: payload})
	if err != nil {
		slog.Error("broadcast marshal failed", "error", err)
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		// Broadcast queue full; observers are best-effort.
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Observation is read-only, so any origin may connect.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades an HTTP request to a websocket observer connection.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &wsClient{hub: h, conn: conn, send: make(chan []byte, 32)}
	h.register <- c

	go c.writePump()
	go c.readPump()
}

// writePump forwards queued messages to the socket.
func (c *wsClient) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// readPump discards inbound frames; its job is to notice disconnects.
func (c *wsClient) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

package preview

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// ReloadPath is the WebSocket endpoint browsers connect to.
const ReloadPath = "/_htmlbuilder/reload"

// MessageType represents the type of reload message.
type MessageType string

const (
	MessageReload MessageType = "reload"
	MessageError  MessageType = "error"
	MessageClear  MessageType = "clear"
)

// Message is sent to browsers via WebSocket.
type Message struct {
	Type  MessageType `json:"type"`
	Error string      `json:"error,omitempty"`
}

// Hub manages WebSocket connections for live reload.
type Hub struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader

	// onCount is called with the client count after every change.
	onCount func(int)
}

// NewHub creates a new reload hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// ServeHTTP upgrades the request and holds the connection until the
// client goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	n := len(h.clients)
	h.mu.Unlock()
	h.counted(n)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.remove(conn)
}

// NotifyReload tells every client to reload the page.
func (h *Hub) NotifyReload() {
	h.broadcast(Message{Type: MessageReload})
}

// NotifyError shows errMsg in every client's error overlay.
func (h *Hub) NotifyError(errMsg string) {
	h.broadcast(Message{Type: MessageError, Error: errMsg})
}

// ClearError removes the error overlay on every client.
func (h *Hub) ClearError() {
	h.broadcast(Message{Type: MessageClear})
}

func (h *Hub) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			h.remove(client)
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	n := len(h.clients)
	h.mu.Unlock()

	conn.Close()
	if ok {
		h.counted(n)
	}
}

func (h *Hub) counted(n int) {
	if h.onCount != nil {
		h.onCount(n)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close closes all client connections.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[*websocket.Conn]bool)
	h.mu.Unlock()

	for client := range clients {
		client.Close()
	}
	h.counted(0)
}

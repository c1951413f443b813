// internal/server/hub.go
package server

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// reloadMessage tells connected browsers to reload the page.
var reloadMessage = []byte("reload")

// writeWait bounds each write to a client.
var writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Local dev server only; any origin may connect.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub maintains the set of live-reload clients.
type Hub struct {
	clients map[*websocket.Conn]bool
	mu      sync.Mutex
}

func newHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

func (h *Hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
	slog.Debug("Live-reload client connected", "clients", len(h.clients))
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
		slog.Debug("Live-reload client disconnected", "clients", len(h.clients))
	}
}

// clientCount reports the number of connected clients.
func (h *Hub) clientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// broadcastMessage sends message to every client, dropping the ones that
// fail or do not accept it within writeWait. Only the rebuild loop calls
// it, so there is a single writer per connection.
func (h *Hub) broadcastMessage(message []byte) {
	h.mu.Lock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.Unlock()

	for _, client := range clients {
		err := client.SetWriteDeadline(time.Now().Add(writeWait))
		if err == nil {
			err = client.WriteMessage(websocket.TextMessage, message)
		}
		if err != nil {
			slog.Warn("Error writing to live-reload client", "error", err)
			h.unregister(client)
		}
	}
}

// serveWs upgrades the request and holds the connection until the peer
// goes away. Clients never send anything; reads only detect the close.
func serveWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("WebSocket upgrade error", "error", err)
		return
	}
	hub.register(conn)
	defer hub.unregister(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

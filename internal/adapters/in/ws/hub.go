// Package ws pushes realtime updates to connected UI clients over WebSocket.
// The hub implements ports.RealtimePublisher: refresh hints are broadcast to
// everyone, toasts go only to the sockets of the addressed user.
package ws

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"printflow/internal/core/ports"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// message is the envelope written to clients.
type message struct {
	Type     string `json:"type"`
	Topic    string `json:"topic,omitempty"`
	Message  string `json:"message,omitempty"`
	Severity string `json:"severity,omitempty"`
}

// Hub tracks connected clients and fans realtime messages out to them.
// Writes are fire-and-forget: a client that fails to receive is dropped.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]string
	logger  *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]string),
		logger:  logger.With("component", "ws"),
	}
}

// Handle upgrades an HTTP request to a WebSocket connection and keeps it
// registered until the client disconnects. The connecting user is identified
// by the userId query parameter; authentication happens upstream.
func (h *Hub) Handle(c echo.Context) error {
	userID := c.QueryParam("userId")

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = userID
	h.mu.Unlock()

	h.logger.Info("client connected", "userId", userID)

	// Drain the connection; clients never send anything meaningful,
	// the read loop just detects disconnects.
	for {
		if _, _, readErr := conn.ReadMessage(); readErr != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()

	h.logger.Info("client disconnected", "userId", userID)
	return nil
}

// PublishToast sends a toast to every connection of the given user.
func (h *Hub) PublishToast(_ context.Context, userID string, toast ports.Toast) {
	h.send(message{Type: "toast", Message: toast.Message, Severity: toast.Severity}, func(connUser string) bool {
		return connUser == userID
	})
}

// PublishRefresh tells every connected client to reload the given topic.
func (h *Hub) PublishRefresh(_ context.Context, topic string) {
	h.send(message{Type: "refresh", Topic: topic}, func(string) bool { return true })
}

// ClientCount reports how many sockets are currently registered.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// send writes msg to every client the filter admits, dropping dead connections.
func (h *Hub) send(msg message, wants func(connUser string) bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn, connUser := range h.clients {
		if !wants(connUser) {
			continue
		}
		if err := conn.WriteJSON(msg); err != nil {
			h.logger.Warn("dropping client", "userId", connUser, "err", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

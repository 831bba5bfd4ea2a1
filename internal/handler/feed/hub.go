// Package feed pushes room log updates to connected group-chat clients.
package feed

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/hogehogepiyopiyo/yesnogame/internal/model/game"
	"github.com/hogehogepiyopiyo/yesnogame/internal/service/roomlog"
)

const (
	// sendBuffer is the live-entry headroom per connection; a client that
	// falls this far behind gets disconnected instead of stalling the hub.
	sendBuffer   = 32
	writeTimeout = 10 * time.Second
)

// client is one WebSocket connection with its outbound queue. All socket
// writes happen on the connection's own writePump goroutine.
type client struct {
	conn *websocket.Conn
	send chan game.LogEntry
}

// Hub fans room log entries out to WebSocket connections and channel
// subscribers (the SSE fallback) keyed by room. Socket writes never happen
// under the hub lock, so one slow client cannot hold up other rooms' turns.
type Hub struct {
	logs     *roomlog.Service
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[string]map[*client]struct{}
	subs  map[string]map[chan game.LogEntry]struct{}
}

func NewHub(logs *roomlog.Service) *Hub {
	return &Hub{
		logs: logs,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		conns: make(map[string]map[*client]struct{}),
		subs:  make(map[string]map[chan game.LogEntry]struct{}),
	}
}

// RegisterRoutes mounts the WebSocket feed.
func (h *Hub) RegisterRoutes(r chi.Router) {
	r.Get("/ws", h.handleWebSocket)
}

func (h *Hub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	roomID := game.NormalizeRoomID(r.URL.Query().Get("roomId"))

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[feed] websocket upgrade failed: %v", err)
		return
	}

	backlog := h.logs.List(r.Context(), roomID)

	c := &client{
		conn: conn,
		send: make(chan game.LogEntry, len(backlog)+sendBuffer),
	}
	// Queue the backlog before registering so every live entry lands after it.
	for _, entry := range backlog {
		c.send <- entry
	}

	h.mu.Lock()
	if h.conns[roomID] == nil {
		h.conns[roomID] = make(map[*client]struct{})
	}
	h.conns[roomID][c] = struct{}{}
	h.mu.Unlock()

	log.Printf("[feed] websocket joined room=%s", roomID)

	go h.writePump(roomID, c)
	go h.readPump(roomID, c)
}

// writePump drains the outbound queue onto the socket. Every write carries a
// deadline; a miss terminates the connection.
func (h *Hub) writePump(roomID string, c *client) {
	defer h.drop(roomID, c)

	for entry := range c.send {
		payload, err := json.Marshal(entry)
		if err != nil {
			log.Printf("[feed] failed to marshal log entry: %v", err)
			continue
		}
		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

// readPump only observes the close.
func (h *Hub) readPump(roomID string, c *client) {
	defer h.drop(roomID, c)

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast delivers a fresh log entry to every listener of the room. The
// delivery is a non-blocking enqueue; a connection whose queue is full is
// disconnected rather than allowed to stall the caller.
func (h *Hub) Broadcast(roomID string, entry game.LogEntry) {
	var stalled []*client

	h.mu.Lock()
	for c := range h.conns[roomID] {
		select {
		case c.send <- entry:
		default:
			delete(h.conns[roomID], c)
			close(c.send)
			stalled = append(stalled, c)
		}
	}
	for ch := range h.subs[roomID] {
		select {
		case ch <- entry:
		default:
			// A stalled subscriber must not block the turn.
		}
	}
	h.mu.Unlock()

	for _, c := range stalled {
		c.conn.Close()
		log.Printf("[feed] dropped stalled websocket in room=%s", roomID)
	}
}

// Subscribe returns a channel fed with the room's future entries plus a
// cancel function releasing it. Used by the SSE fallback feed.
func (h *Hub) Subscribe(roomID string) (<-chan game.LogEntry, func()) {
	ch := make(chan game.LogEntry, 16)

	h.mu.Lock()
	if h.subs[roomID] == nil {
		h.subs[roomID] = make(map[chan game.LogEntry]struct{})
	}
	h.subs[roomID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		delete(h.subs[roomID], ch)
		h.mu.Unlock()
	}
	return ch, cancel
}

// drop unregisters the connection and closes its queue exactly once; both
// pumps and Broadcast can race to retire the same connection.
func (h *Hub) drop(roomID string, c *client) {
	h.mu.Lock()
	_, registered := h.conns[roomID][c]
	if registered {
		delete(h.conns[roomID], c)
		close(c.send)
	}
	h.mu.Unlock()

	c.conn.Close()
	if registered {
		log.Printf("[feed] websocket left room=%s", roomID)
	}
}

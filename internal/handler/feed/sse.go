package feed

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hogehogepiyopiyo/yesnogame/internal/model/game"
	"github.com/hogehogepiyopiyo/yesnogame/internal/service/roomlog"
	"github.com/hogehogepiyopiyo/yesnogame/pkg/utils"
)

// SSEHandler is the fallback live feed for clients that cannot hold a
// WebSocket open (typically behind strict proxies).
type SSEHandler struct {
	hub  *Hub
	logs *roomlog.Service
}

func NewSSEHandler(hub *Hub, logs *roomlog.Service) *SSEHandler {
	return &SSEHandler{hub: hub, logs: logs}
}

// RegisterRoutes mounts the SSE feed.
func (h *SSEHandler) RegisterRoutes(r chi.Router) {
	r.Get("/stream", h.handleStream)
}

func (h *SSEHandler) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	roomID := game.NormalizeRoomID(r.URL.Query().Get("roomId"))
	utils.SetupSSEHeaders(w)

	entries, cancel := h.hub.Subscribe(roomID)
	defer cancel()

	// Replay the backlog so late joiners see the whole conversation.
	for _, entry := range h.logs.List(r.Context(), roomID) {
		utils.SendSSEEvent(w, flusher, "message", entry)
	}

	ctx := r.Context()
	log.Printf("[feed] sse stream opened for room=%s", roomID)

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[feed] sse stream closed for room=%s", roomID)
			return
		case entry := <-entries:
			utils.SendSSEEvent(w, flusher, "message", entry)
		case t := <-ticker.C:
			utils.SendSSEChunk(w, flusher, map[string]any{
				"event": "heartbeat",
				"time":  t.UTC().Format(time.RFC3339),
			})
		}
	}
}

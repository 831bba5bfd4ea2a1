package chat

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hogehogepiyopiyo/yesnogame/internal/handler/feed"
	"github.com/hogehogepiyopiyo/yesnogame/internal/model/game"
	"github.com/hogehogepiyopiyo/yesnogame/internal/service/ai"
	"github.com/hogehogepiyopiyo/yesnogame/internal/service/roomlog"
	"github.com/hogehogepiyopiyo/yesnogame/pkg/utils"
)

const anonymousName = "名無し"

// GameMaster runs one game turn for a room.
type GameMaster interface {
	TakeTurn(ctx context.Context, roomID, userText string, kind game.Kind) (string, error)
}

// Handler チャット中継のHTTPハンドラ
type Handler struct {
	gm   GameMaster
	logs *roomlog.Service
	hub  *feed.Hub
}

func New(gm GameMaster, logs *roomlog.Service, hub *feed.Hub) *Handler {
	return &Handler{
		gm:   gm,
		logs: logs,
		hub:  hub,
	}
}

// RegisterRoutes チャット関連のルートを登録する
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Get("/log", h.handleLog)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		RoomID  string `json:"roomId"`
		Message string `json:"message"`
		Name    string `json:"name"`
		Kind    string `json:"kind"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.Message == "" {
		utils.RespondError(w, http.StatusBadRequest, "message が必要です")
		return
	}

	roomID := game.NormalizeRoomID(payload.RoomID)
	kind := game.NormalizeKind(payload.Kind)

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		name = anonymousName
	}

	userEntry := h.logs.Append(r.Context(), game.LogEntry{
		RoomID: roomID,
		Sender: game.SenderUser,
		Name:   name,
		Kind:   string(kind),
		Text:   payload.Message,
	})
	h.hub.Broadcast(roomID, userEntry)

	// Free chatter stays between players; the game master never sees it.
	if kind == game.KindFree {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"roomId": roomID})
		return
	}

	reply, err := h.gm.TakeTurn(r.Context(), roomID, payload.Message, kind)
	if err != nil {
		h.respondTurnError(w, roomID, err)
		return
	}

	gptEntry := h.logs.Append(r.Context(), game.LogEntry{
		RoomID: roomID,
		Sender: game.SenderGPT,
		Name:   "GPT",
		Text:   reply,
	})
	h.hub.Broadcast(roomID, gptEntry)

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"reply":  reply,
		"roomId": roomID,
	})
}

func (h *Handler) handleLog(w http.ResponseWriter, r *http.Request) {
	roomID := game.NormalizeRoomID(r.URL.Query().Get("roomId"))

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"roomId":   roomID,
		"messages": h.logs.List(r.Context(), roomID),
	})
}

func (h *Handler) respondTurnError(w http.ResponseWriter, roomID string, err error) {
	log.Printf("[chat] turn failed for room=%s: %v", roomID, err)

	if errors.Is(err, ai.ErrRateLimited) {
		utils.RespondJSON(w, http.StatusTooManyRequests, map[string]string{
			"error":   "rate_limit",
			"message": "現在、外部AIサービスの利用上限に達しています。しばらく時間をおいてから再度お試しください。",
		})
		return
	}

	utils.RespondJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "server_error",
		"message": "サーバー側でエラーが発生しました。",
	})
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chatHandler "github.com/hogehogepiyopiyo/yesnogame/internal/handler/chat"
	"github.com/hogehogepiyopiyo/yesnogame/internal/handler/feed"
	middlewarePkg "github.com/hogehogepiyopiyo/yesnogame/internal/middleware"
	"github.com/hogehogepiyopiyo/yesnogame/internal/observability"
	"github.com/hogehogepiyopiyo/yesnogame/internal/service/roomlog"
)

// NewRouter wires HTTP routes to core services. The static file root serves
// the group-chat web UI (index.html and friends).
func NewRouter(gm chatHandler.GameMaster, logs *roomlog.Service, hub *feed.Hub, staticDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatH := chatHandler.New(gm, logs, hub)
	sseH := feed.NewSSEHandler(hub, logs)

	r.Route("/api", func(api chi.Router) {
		chatH.RegisterRoutes(api)
		hub.RegisterRoutes(api)
		sseH.RegisterRoutes(api)
	})

	r.Method(http.MethodGet, "/metrics", observability.MetricsHandler())

	if staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(staticDir)))
	}

	return r
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hogehogepiyopiyo/yesnogame/internal/config"
	"github.com/hogehogepiyopiyo/yesnogame/internal/handler"
	"github.com/hogehogepiyopiyo/yesnogame/internal/handler/feed"
	"github.com/hogehogepiyopiyo/yesnogame/internal/observability"
	"github.com/hogehogepiyopiyo/yesnogame/internal/prompt"
	"github.com/hogehogepiyopiyo/yesnogame/internal/service/ai"
	gamesvc "github.com/hogehogepiyopiyo/yesnogame/internal/service/game"
	"github.com/hogehogepiyopiyo/yesnogame/internal/service/roomlog"
	"github.com/hogehogepiyopiyo/yesnogame/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	transcripts, err := store.New(ctx, cfg.Store.DatabaseURL, cfg.Store.RoomTTL)
	if err != nil {
		log.Fatalf("failed to initialize transcript store: %v", err)
	}
	defer transcripts.Close()

	aiSvc, err := ai.NewService(ctx, cfg.AI, prompt.SystemInstruction)
	if err != nil {
		log.Fatalf("failed to initialize AI service - Ark モデル関連の環境変数を確認してください: %v", err)
	}
	log.Println("AI service initialized successfully")

	metrics := observability.NewMetrics("yesnogame")
	gameService := gamesvc.NewService(transcripts, aiSvc, metrics)

	if mem, ok := transcripts.(*store.MemoryStore); ok && cfg.Store.RoomTTL > 0 {
		go runJanitor(ctx, mem, gameService, cfg.Store.RoomTTL)
	}

	logs := roomlog.NewService()
	hub := feed.NewHub(logs)

	router := handler.NewRouter(gameService, logs, hub, cfg.Server.StaticDir)

	startServer(ctx, cfg.Server, router)
}

// runJanitor reclaims idle rooms so an unbounded chat history cannot pin the
// process's memory forever. Swept rooms also get their turn locks released.
func runJanitor(ctx context.Context, mem *store.MemoryStore, games *gamesvc.Service, ttl time.Duration) {
	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := mem.Sweep(); len(removed) > 0 {
				games.ReleaseRooms(removed...)
				log.Printf("[store] swept %d idle rooms", len(removed))
			}
		}
	}
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Yes/No game relay listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

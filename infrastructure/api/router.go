package api

import (
	"chat-edit/auth"
	"chat-edit/observability"
	"chat-edit/runtime"
	"chat-edit/services"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

type RouterConfig struct {
	AllowedOrigins       []string
	ConnectionBufferSize int
	Monitor              *observability.MonitoringManager
}

func NewRouter(log *slog.Logger, chat services.IChatService, registry *runtime.Registry,
	issuer *auth.TokenIssuer, cfg RouterConfig) http.Handler {
	chatHandler := NewChatHandler(log, chat, cfg.Monitor)
	wsHandler := NewWebsocketHandler(log, registry, cfg.ConnectionBufferSize)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]any{"status": "ok", "online": registry.Online()})
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(issuer, unauthorized(log)))
		r.Get("/ws", wsHandler.ServeWS)
		r.Get("/stats", func(w http.ResponseWriter, r *http.Request) {
			render.JSON(w, r, cfg.Monitor.GetLatest(registry.Online()))
		})
		r.Route("/api/v3/chats/{roomID}/messages/{mid}", func(r chi.Router) {
			r.Put("/", chatHandler.EditMessage)
			r.Get("/permissions/{operation}", chatHandler.Permissions)
		})
	})
	return r
}

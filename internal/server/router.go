package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/approvebot/internal/bot"
	"github.com/sevigo/approvebot/internal/config"
	"github.com/sevigo/approvebot/internal/server/handler"
)

// NewRouter creates and configures the HTTP router with middleware and
// the Slack event routes.
func NewRouter(cfg *config.Config, dispatcher *bot.Dispatcher, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		slackHandler := handler.NewSlackHandler(cfg, dispatcher, logger)
		r.Post("/slack/events", slackHandler.HandleEvent)
		r.Post("/slack/command", slackHandler.HandleCommand)
	})

	return r
}

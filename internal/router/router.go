package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/diskusi-dev/diskusi/internal/middleware/metrics"
	"github.com/diskusi-dev/diskusi/internal/setup"
)

// New builds the route table. Mutations require auth; thread details are
// public.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))
	r.Use(metrics.Middleware)

	h := deps.Handler
	needAuth := deps.AuthMiddleware.NeedAuth()

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/threads", func(r chi.Router) {
		r.With(needAuth).Post("/", h.PostThread)
		r.Get("/{threadId}", h.GetThreadDetails)
		r.With(needAuth).Post("/{threadId}/comments", h.PostComment)
		r.With(needAuth).Delete("/{threadId}/comments/{commentId}", h.DeleteComment)
	})

	return r
}

// Package server wires the HTTP API: one chat endpoint that runs a
// conversation turn, plus admin routes for personas, threads and messages.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/duetchat/duet/internal/handler"
	chathandler "github.com/duetchat/duet/internal/handler/chat"
	messagehandler "github.com/duetchat/duet/internal/handler/message"
	personahandler "github.com/duetchat/duet/internal/handler/persona"
	threadhandler "github.com/duetchat/duet/internal/handler/thread"
	"github.com/duetchat/duet/internal/logging"
	"github.com/duetchat/duet/internal/svc"
)

// NewRouter builds the chi router with all routes registered.
func NewRouter(svcCtx *svc.ServiceContext) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(corsMiddleware(svcCtx.Config.Server.AllowedOrigins))

	r.Get("/health", handler.HealthHandler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", chathandler.SendMessageHandler(svcCtx))

		r.Route("/personas", func(r chi.Router) {
			r.Get("/", personahandler.ListPersonasHandler(svcCtx))
			r.Post("/", personahandler.CreatePersonaHandler(svcCtx))
			r.Get("/{id}", personahandler.GetPersonaHandler(svcCtx))
			r.Patch("/{id}", personahandler.UpdatePersonaHandler(svcCtx))
		})

		r.Route("/threads", func(r chi.Router) {
			r.Get("/", threadhandler.ListThreadsHandler(svcCtx))
			r.Get("/{id}", threadhandler.GetThreadHandler(svcCtx))
			r.Get("/{id}/messages", threadhandler.ThreadMessagesHandler(svcCtx))
			r.Patch("/{id}/summary", threadhandler.UpdateSummaryHandler(svcCtx))
			r.Delete("/{id}", threadhandler.DeleteThreadHandler(svcCtx))
		})

		r.Delete("/messages/{id}", messagehandler.DeleteMessageHandler(svcCtx))
	})

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, svcCtx *svc.ServiceContext) error {
	httpServer := &http.Server{
		Addr:        fmt.Sprintf(":%d", svcCtx.Config.Server.Port),
		Handler:     NewRouter(svcCtx),
		IdleTimeout: 120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Infof("server ready at http://localhost:%d", svcCtx.Config.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// corsMiddleware allows the configured frontend origins. Other origins get
// no CORS headers and the browser blocks the response.
func corsMiddleware(allowed []string) func(http.Handler) http.Handler {
	allowedSet := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		allowedSet[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if origin != "" && allowedSet[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

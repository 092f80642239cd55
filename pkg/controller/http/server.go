package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/blockrelay/pkg/usecase"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router  chi.Router
	handler *BlocklistHandler
}

// NewServer creates a new HTTP server relaying blocklist requests to blocklistUC
func NewServer(ctx context.Context, addr string, blocklistUC usecase.BlocklistUseCase) *Server {
	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	handler := NewBlocklistHandler(blocklistUC)

	router.Get("/", handleRoot)
	router.Get("/health", handleHealth)

	router.Post("/add", handler.HandleAdd)
	router.Post("/remove", handler.HandleRemove)

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:  router,
		handler: handler,
	}
}

// handleRoot answers liveness probes with a plain "ok"
func handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write root response", "error", err)
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "blockrelay",
	})
}

// writeJSON writes body as a JSON response with status
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

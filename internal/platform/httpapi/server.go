// Package httpapi serves the stored leaderboard and personal records as
// read-only JSON over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/crazytype/internal/registry"
	"github.com/vovakirdan/crazytype/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Server bundles the router and the score store.
type Server struct {
	r      *chi.Mux
	store  *storage.Store
	logger *log.Logger
}

// New builds a Server. A nil store makes every data endpoint answer 503.
func New(store *storage.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{r: chi.NewRouter(), store: store, logger: logger}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(s.logRequests)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/games", s.handleGames)
		r.Get("/leaderboard/{gameID}", s.handleLeaderboard)
		r.Get("/records/{gameID}", s.handleRecords)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Router exposes the router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP API", "address", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// logRequests logs every request once it has been served.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// gameFromPath resolves {gameID} and writes a 404 for unknown games.
func gameFromPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "gameID")
	if !registry.Exists(id) {
		writeError(w, http.StatusNotFound, "unknown_game")
		return "", false
	}
	return id, true
}

// requireStore writes a 503 when no store is configured.
func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "storage_unavailable")
		return false
	}
	return true
}

// parseLimit reads ?limit=, clamped to [1, maxLimit].
func parseLimit(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n <= 0 {
		return defaultLimit
	}
	return min(n, maxLimit)
}

// Package server exposes the dashboard HTTP API: chart-ready series and
// comparison metrics as JSON for the browser UI. It owns the presentation
// concerns the core stays free of — request logging, response caching, and
// the mapping from typed errors to HTTP statuses.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ShafqaatMalik/financial-data-project/internal/logger"
	"github.com/ShafqaatMalik/financial-data-project/pkg/marketdata"
)

// Server serves the dashboard API over HTTP.
type Server struct {
	client     *marketdata.Client
	log        *logger.Logger
	cache      *resultCache
	router     *mux.Router
	httpServer *http.Server
}

// New creates a dashboard API server backed by the given market data client.
// cacheTTL bounds how long a rendered response may be reused; zero disables
// the cache.
func New(addr string, client *marketdata.Client, log *logger.Logger, cacheTTL time.Duration) *Server {
	s := &Server{
		client: client,
		log:    log,
		cache:  newResultCache(cacheTTL),
	}

	router := mux.NewRouter()
	router.Use(s.requestLogging)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/series/{ticker}", s.handleSeries).Methods(http.MethodGet)
	api.HandleFunc("/compare", s.handleCompare).Methods(http.MethodGet)

	s.router = router
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks serving the API until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.log.Info("dashboard API listening", zap.String("addr", s.httpServer.Addr))

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// requestLogging tags every request with an ID and logs its outcome.
func (s *Server) requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)

		s.log.Info("request handled",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

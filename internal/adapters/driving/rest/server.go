package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/tracedocs/ddsdocs-cli/internal/logger"
)

// Version is the REST API version.
const Version = "0.1.0"

// Default token-bucket settings for the API rate limiter.
const (
	defaultRequestsPerSecond = 50
	defaultBurstSize         = 100
)

// Server serves the knowledge base over HTTP.
type Server struct {
	ports  *Ports
	router chi.Router
}

// NewServer creates a new REST server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{ports: ports}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	// Read-only API, so permissive CORS is fine.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(rateLimit(rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), defaultBurstSize)))

	r.Get("/health", s.handleHealth)
	r.Get("/info", s.handleInfo)

	r.Route("/api", func(r chi.Router) {
		r.Get("/documents", s.handleSearchDocuments)
		r.Get("/documents/{filename}", s.handleDocument)
		r.Get("/endpoints", s.handleEndpoints)
		r.Get("/examples", s.handleExamples)
		r.Get("/rules", s.handleRules)
		r.Get("/categories", s.handleCategories)
		r.Get("/stats", s.handleStats)
	})

	s.router = r
	return s, nil
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server on addr and blocks until ctx is cancelled or the
// listener fails.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	logger.Info("REST server listening on %s", addr)
	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// rateLimit rejects requests beyond the shared token bucket with 429.
func rateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				respondError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

package serve

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ccm2020/home-assistant/search"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	relatedPath = "/api/search/related"
	metricsPath = "/metrics"
	healthPath  = "/healthz"

	maxRequestBytes = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// Server answers search/related commands over HTTP.
type Server struct {
	engine  *search.Engine
	logger  *slog.Logger
	metrics *metrics
	schema  *jsonschema.Resolved
	handler http.Handler
}

// NewServer builds a server around engine.
func NewServer(engine *search.Engine, logger *slog.Logger) (*Server, error) {
	schema, err := requestSchema()
	if err != nil {
		return nil, err
	}

	s := &Server{
		engine:  engine,
		logger:  logger,
		metrics: newMetrics(),
		schema:  schema,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST "+relatedPath, s.handleRelated)
	mux.HandleFunc("GET "+healthPath, s.handleHealthz)
	mux.Handle("GET "+metricsPath, promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	// Recovery is outermost so it also covers the other middlewares.
	var handler http.Handler = mux
	handler = s.loggingMiddleware(handler)
	handler = s.requestIDMiddleware(handler)
	handler = s.recoveryMiddleware(handler)
	s.handler = handler

	return s, nil
}

// Handler returns the root handler of the server.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}
	return nil
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) writeMessage(w http.ResponseWriter, status int, msg resultMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		s.logger.Warn("failed to write reply", "error", err)
	}
}

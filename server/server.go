// Package server exposes a loaded catalogue over a read-only HTTP API.
//
// Routes:
//
//	GET /api/health               dataset summary
//	GET /api/buses/{name}         bus statistics
//	GET /api/buses/{name}/stops   stop names of a bus
//	GET /api/stops/{name}         buses serving a stop
//	GET /api/route?from=..&to=..  fastest itinerary
//	GET /api/map.svg              network map
//
// Bus, stop and route responses use the same JSON shapes as the batch
// output; an optional id query parameter is echoed as request_id.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/transit-catalogue/config"
	"github.com/theoremus-urban-solutions/transit-catalogue/responder"
)

// Info describes the dataset being served.
type Info struct {
	DatasetID uuid.UUID
	RouterID  uuid.UUID
	Stops     int
	Routes    int
}

// Server serves one immutable dataset.
type Server struct {
	responder *responder.Responder
	info      Info
	cfg       config.ServerConfig
	log       zerolog.Logger
	startedAt time.Time
	handler   http.Handler
}

// New creates a Server. The responder must answer from a catalogue that no
// longer changes.
func New(resp *responder.Responder, info Info, cfg config.ServerConfig, log zerolog.Logger) *Server {
	s := &Server{
		responder: resp,
		info:      info,
		cfg:       cfg,
		log:       log,
		startedAt: time.Now(),
	}
	s.handler = s.routes()
	return s
}

// Handler returns the HTTP handler with all middleware applied.
func (s *Server) Handler() http.Handler { return s.handler }

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/buses/{name}", s.handleBus)
		r.Get("/buses/{name}/stops", s.handleBusStops)
		r.Get("/stops/{name}", s.handleStop)
		r.Get("/route", s.handleRoute)
		r.Get("/map.svg", s.handleMap)
	})
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request served")
	})
}

// Run listens on the configured port until ctx is cancelled, then shuts the
// server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.log.Info().Str("addr", ln.Addr().String()).Str("dataset_id", s.info.DatasetID.String()).Msg("server listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.ShutdownTimeoutMS)*time.Millisecond)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info().Msg("server shut down successfully")
	return nil
}

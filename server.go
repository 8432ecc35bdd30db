package mrtdirections

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

// Server exposes the directions service over HTTP.
type Server struct {
	svc    *Service
	logger zerolog.Logger
	http   *http.Server
}

// NewServer wires the HTTP transport around a directions service.
func NewServer(svc *Service, port int, logger zerolog.Logger) *Server {
	s := &Server{svc: svc, logger: logger}
	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler builds the route table. Exposed separately so tests can drive the
// mux without a listening socket.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /directions/mrt/from/{from}/to/{to}", s.handlePlanByName)
	mux.HandleFunc("GET /directions/mrt/from/{from}/to/{to}/datetime/{datetime}", s.handlePlanByName)
	mux.HandleFunc("GET /directions/id/from/{from}/to/{to}", s.handlePlanByID)
	mux.HandleFunc("GET /directions/id/from/{from}/to/{to}/datetime/{datetime}", s.handlePlanByID)
	return mux
}

// Start begins serving in the background.
func (s *Server) Start() {
	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal().Err(err).Msg("server error")
		}
	}()
	s.logger.Info().Str("addr", s.http.Addr).Msg("server listening")
}

// HandleGracefulShutdown blocks until SIGINT/SIGTERM, then drains the server.
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	s.logger.Info().Msg("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("server shutdown error")
		return
	}
	s.logger.Info().Msg("server shut down successfully")
}

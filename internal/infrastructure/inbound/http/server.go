package delivery_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	ports "pinstack-tag-service/internal/domain/ports/output"
	tag_http "pinstack-tag-service/internal/infrastructure/inbound/http/tag"
)

type Server struct {
	tagAPI    *tag_http.TagAPI
	server    *http.Server
	address   string
	port      int
	jwtSecret string
	log       ports.Logger
	metrics   ports.MetricsProvider
}

func NewServer(tagAPI *tag_http.TagAPI, address string, port int, jwtSecret string, log ports.Logger, metrics ports.MetricsProvider) *Server {
	return &Server{
		tagAPI:    tagAPI,
		address:   address,
		port:      port,
		jwtSecret: jwtSecret,
		log:       log,
		metrics:   metrics,
	}
}

func (s *Server) Run() error {
	address := fmt.Sprintf("%s:%d", s.address, s.port)
	s.server = &http.Server{
		Addr:              address,
		Handler:           s.buildRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.Info("Starting HTTP server", slog.Int("port", s.port))
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

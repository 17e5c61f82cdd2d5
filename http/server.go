package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/distill"
)

// DefaultMaxUploadSize is the largest accepted multipart body.
const DefaultMaxUploadSize = 32 << 20

// Server exposes the scraping API.
type Server struct {
	Scraper distill.Scraper
	Files   distill.FileExtractor
	Stats   func() distill.PoolStats // optional
	Logger  *slog.Logger

	MaxUploadSize int64

	server *http.Server
}

// NewServer creates a Server listening on addr. Dependencies are assigned
// to the exported fields before Open is called.
func NewServer(addr string) *Server {
	s := &Server{MaxUploadSize: DefaultMaxUploadSize}
	s.server = &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler returns the routed handler wrapped in middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/scraping", s.handleScrape)
	mux.HandleFunc("POST /api/scraping/{$}", s.handleScrape)
	mux.HandleFunc("POST /api/scraping/file", s.handleFile)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("/", s.handleNotFound)

	var h http.Handler = mux
	h = s.withRecovery(h)
	h = s.withLogging(h)
	h = withRequestID(h)
	return h
}

// Open starts serving. It blocks until the server stops and returns nil
// after a graceful Close.
func (s *Server) Open() error {
	s.server.Handler = s.Handler()
	s.logger().Info("http server listening", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Close waits for in-flight requests and stops the server.
func (s *Server) Close(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (s *Server) maxUploadSize() int64 {
	if s.MaxUploadSize > 0 {
		return s.MaxUploadSize
	}
	return DefaultMaxUploadSize
}

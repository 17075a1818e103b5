// Package api serves scores over HTTP with gin and pushes newly recorded
// scores to WebSocket clients.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/microgames/internal/storage"
)

// Config holds configuration for the API server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// Store backs the score endpoints. Without it they answer 503.
	Store *storage.Store

	// Logger overrides the default "arcade-api" logger.
	Logger *log.Logger
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{Address: ":8080"}
}

// Server is the HTTP API and score feed.
type Server struct {
	config Config
	store  *storage.Store
	hub    *Hub
	engine *gin.Engine
	logger *log.Logger

	hubOnce sync.Once
	life    context.Context // bounds the hub; cancelled by Close
	stop    context.CancelFunc
}

// NewServer builds the router. The feed hub starts on first use of
// Handler or Serve and runs until Close.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade-api",
		})
	}

	s := &Server{
		config: cfg,
		store:  cfg.Store,
		hub:    NewHub(logger),
		logger: logger,
	}
	s.life, s.stop = context.WithCancel(context.Background())

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger)

	api := r.Group("/api")
	api.GET("/test", s.handleTest)
	api.GET("/games", s.handleGames)
	api.GET("/scores/:game", s.handleTopScores)
	api.POST("/scores/:game", s.handleSaveScore)
	api.GET("/stats", s.handleStats)

	r.GET("/ws", s.hub.handle)

	s.engine = r
	return s
}

// Handler returns the HTTP handler, for tests and embedding. It starts
// the feed hub; call Close when done with it.
func (s *Server) Handler() http.Handler {
	s.startHub()
	return s.engine
}

func (s *Server) startHub() {
	s.hubOnce.Do(func() { go s.hub.Run(s.life) })
}

// Close stops the feed hub and disconnects its clients. Feed requests
// after Close are refused.
func (s *Server) Close() {
	s.startHub()
	s.stop()
}

// Hub returns the score feed. It satisfies the platform's score sink.
func (s *Server) Hub() *Hub {
	return s.hub
}

// ListenAndServe runs the server until SIGINT or SIGTERM.
func (s *Server) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Serve(ctx)
}

// Serve listens on the configured address until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	s.startHub()
	defer s.Close()

	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.logger.Info("starting API server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errc:
		return fmt.Errorf("api: listen %s: %w", s.config.Address, err)
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.logger.Info("request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration", time.Since(start),
	)
}

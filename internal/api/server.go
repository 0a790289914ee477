package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"assparse/internal/config"
	"assparse/internal/logging"
	"assparse/internal/partcache"
)

// ErrServerRunning is returned by Start when another server holds the lock.
var ErrServerRunning = errors.New("another assparse server is already running for this cache")

// Server is the HTTP parse server.
type Server struct {
	cfg    *config.Config
	cache  *partcache.Cache
	logger *slog.Logger

	lockPath string
	lock     *flock.Flock

	listener net.Listener
	server   *http.Server
	started  time.Time

	parsed atomic.Int64
	failed atomic.Int64
	cached atomic.Int64
}

// New constructs a server. cache may be nil to serve without caching.
func New(cfg *config.Config, cache *partcache.Cache, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("api server requires config")
	}
	lockPath := cfg.ServerLockPath()
	s := &Server{
		cfg:      cfg,
		cache:    cache,
		logger:   logging.NewComponentLogger(logger, "api"),
		lockPath: lockPath,
		lock:     flock.New(lockPath),
		started:  time.Now(),
	}
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

// Handler returns the routed, authenticated handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/parse", s.handleParse)
	mux.HandleFunc("GET /api/rules", s.handleRules)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	return s.withRequestID(authMiddleware(strings.TrimSpace(s.cfg.API.Token), mux))
}

// Start acquires the server lock and begins serving on the configured bind
// address. The server shuts down when ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	if err := os.MkdirAll(s.cfg.Paths.CacheDir, 0o755); err != nil {
		return fmt.Errorf("ensure cache directory: %w", err)
	}
	ok, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return ErrServerRunning
	}

	listener, err := net.Listen("tcp", s.cfg.API.Bind)
	if err != nil {
		_ = s.lock.Unlock()
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener
	s.started = time.Now()

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", logging.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	s.logger.Info("api server listening",
		logging.String("address", listener.Addr().String()),
		logging.String("lock", s.lockPath),
		logging.Bool("auth", s.cfg.API.Token != ""),
		logging.Bool("cache", s.cache != nil),
	)
	return nil
}

// Addr returns the bound listener address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop shuts the server down and releases the lock. It is safe to call more
// than once.
func (s *Server) Stop() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.server.Shutdown(shutdownCtx)
	if s.lock.Locked() {
		if err := s.lock.Unlock(); err != nil {
			s.logger.Warn("failed to release server lock", logging.Error(err))
			return
		}
		s.logger.Info("api server stopped")
	}
}

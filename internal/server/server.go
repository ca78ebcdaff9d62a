package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/dip-mandal/hod-website/internal/bootstrap"
	"github.com/dip-mandal/hod-website/internal/config"
)

// Server ties the HTTP listener, the router and the database pool together
// for startup and shutdown.
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	dbPool *pgxpool.Pool
	logger zerolog.Logger
	httpd  *http.Server
}

// New loads configuration, connects and migrates the database, wires the
// dependency graph and returns a server ready to Run.
func New() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	router := bootstrap.SetupRouter(cfg, deps, lgr)
	mountUploads(router, cfg, lgr)

	return &Server{
		cfg:    cfg,
		router: router,
		dbPool: dbPool,
		logger: lgr,
	}, nil
}

// mountUploads serves the image storage directory at /uploads, the path the
// upload endpoint embeds in the URLs it returns.
func mountUploads(router *gin.Engine, cfg *config.Config, lgr zerolog.Logger) {
	dir := cfg.Server.StoragePath
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			lgr.Error().Err(err).Str("path", dir).Msg("Failed to create uploads directory")
			return
		}
	}
	router.Static("/uploads", dir)
	lgr.Info().Str("path", dir).Msg("Serving uploaded images")
}

// Run starts the listener and blocks until a shutdown signal or a listener
// error, then shuts down gracefully.
func (s *Server) Run() error {
	s.httpd = &http.Server{
		Addr:         ":" + s.cfg.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	listenErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.httpd.Addr).Msg("HTTP server listening")
		listenErr <- s.httpd.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-listenErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-stop:
		s.logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	return s.Shutdown(context.Background())
}

// Shutdown drains in-flight requests and closes the database pool.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var shutdownErr error
	if s.httpd != nil {
		if err := s.httpd.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownErr = errors.New("server shutdown completed with errors")
		}
	}

	if s.dbPool != nil {
		s.dbPool.Close()
	}

	s.logger.Info().Msg("Server stopped")
	return shutdownErr
}

// internal/app/server.go
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"client-service/internal/config"
	"client-service/internal/db"
	"client-service/internal/pkg/logger"
	"client-service/internal/repository"
	"client-service/internal/repository/gormstore"
	"client-service/internal/repository/postgres"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	logger *zap.Logger

	mu         sync.Mutex
	httpServer *http.Server
	closeStore func()
}

func NewServer(cfg config.AppConfig) (*Server, error) {
	log, err := logger.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		return nil, err
	}
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	return &Server{cfg: cfg, logger: log}, nil
}

// Logger exposes the process logger to main.
func (s *Server) Logger() *zap.Logger {
	return s.logger
}

// Start opens the store, builds the router and serves until Shutdown.
func (s *Server) Start(ctx context.Context) error {
	// ----- Store -----
	sessions, err := s.openStore(ctx)
	if err != nil {
		return err
	}

	// ----- Router -----
	engine := NewEngine(s.logger)
	SetupRouter(engine, s.logger, sessions, NewHandlers(s.logger))

	// ----- Start HTTP -----
	httpServer := &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: engine,
	}
	s.mu.Lock()
	s.httpServer = httpServer
	s.mu.Unlock()

	s.logger.Info("server running",
		zap.String("addr", s.cfg.HTTPAddr),
		zap.String("driver", s.cfg.DBDriver),
	)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests, then closes the store.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	httpServer, closeStore := s.httpServer, s.closeStore
	s.mu.Unlock()

	var err error
	if httpServer != nil {
		err = httpServer.Shutdown(ctx)
	}
	if closeStore != nil {
		closeStore()
	}
	_ = s.logger.Sync()
	return err
}

func (s *Server) openStore(ctx context.Context) (repository.SessionProvider, error) {
	switch s.cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := db.ConnectDB(ctx, db.PostgresConfig{
			URL:            s.cfg.DatabaseURL,
			MaxConns:       s.cfg.DBMaxConns,
			ConnectTimeout: s.cfg.DBConnectTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		store := postgres.NewDB(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		s.setCloser(pool.Close)
		s.logger.Info("connected to PostgreSQL")
		return store, nil

	case config.DriverSQLite:
		gdb, err := db.OpenSQLite(s.cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store := gormstore.New(gdb)
		if err := store.AutoMigrate(); err != nil {
			_ = db.CloseSQLite(gdb)
			return nil, err
		}
		s.setCloser(func() {
			if err := db.CloseSQLite(gdb); err != nil {
				s.logger.Warn("failed to close sqlite", zap.Error(err))
			}
		})
		s.logger.Info("opened sqlite store", zap.String("path", s.cfg.SQLitePath))
		return store, nil
	}

	return nil, fmt.Errorf("unsupported DB_DRIVER %q", s.cfg.DBDriver)
}

func (s *Server) setCloser(fn func()) {
	s.mu.Lock()
	s.closeStore = fn
	s.mu.Unlock()
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-agenda/internal/audit"
	"github.com/BruksfildServices01/salon-agenda/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-agenda/internal/db"
	"github.com/BruksfildServices01/salon-agenda/internal/logger"
	"github.com/BruksfildServices01/salon-agenda/internal/routes"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer zl.Sync() //nolint:errcheck

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, err := dbpkg.Open(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to open store", zap.Error(err))
	}

	auditDispatcher := audit.NewDispatcher(audit.New(zl), zl)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.NewRouter(stores, cfg, zl, auditDispatcher),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server running", zap.String("addr", cfg.Addr()), zap.String("store", stores.Mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("server shutdown failed", zap.Error(err))
	}
	auditDispatcher.Close()
	if err := stores.Close(shutdownCtx); err != nil {
		zl.Error("store close failed", zap.Error(err))
	}
}

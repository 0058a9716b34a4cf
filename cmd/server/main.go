package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tgo/atrium/apiserver/internal/config"
	"github.com/tgo/atrium/apiserver/internal/handler"
	"github.com/tgo/atrium/apiserver/internal/pkg/db"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	gormDB, err := db.NewGormDB(cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect database", slog.Any("error", err))
		os.Exit(1)
	}

	if err := db.AutoMigrate(gormDB); err != nil {
		logger.Error("failed to migrate", slog.Any("error", err))
		os.Exit(1)
	}

	if err := db.Seed(gormDB, logger, cfg.BootstrapAdminEmail, cfg.BootstrapAdminPassword); err != nil {
		logger.Error("failed to seed", slog.Any("error", err))
		os.Exit(1)
	}

	router := handler.SetupRouter(cfg, gormDB, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting",
			slog.String("port", cfg.Port),
			slog.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server exited")
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/cadastra/backend/config"
	"github.com/cadastra/backend/internal/database"
	"github.com/cadastra/backend/internal/logging"
	"github.com/cadastra/backend/internal/server"
)

func main() {
	if err := logging.Init(); err != nil {
		panic(err)
	}
	defer logging.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg)
	if err != nil {
		logging.Logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		logging.Logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Rate limiting degrades gracefully when Redis is down.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logging.Logger.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		redisClient = nil
	}

	srv := server.New(cfg, db, redisClient)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logging.Logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logging.Logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		logging.Logger.Fatal("server shutdown error", zap.Error(err))
	}
	logging.Logger.Info("server stopped")
}

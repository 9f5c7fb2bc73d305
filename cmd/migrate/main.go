package main

import (
	"go.uber.org/zap"

	"github.com/cadastra/backend/config"
	"github.com/cadastra/backend/internal/database"
	"github.com/cadastra/backend/internal/logging"
)

// Applies pending migrations and exits. The API server also migrates on
// boot; this command exists for deploy pipelines that migrate separately.
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

	logging.Logger.Info("migrations applied")
}

// Standalone seeder: fills the database with the demo users and two
// months of vitals without starting the API server.
package main

import (
	"github.com/noctura/circadian-api/internal/config"
	"github.com/noctura/circadian-api/internal/logging"
	"github.com/noctura/circadian-api/internal/seed"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := seed.Run(db, logger); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}

	logger.Info("seed completed")
}

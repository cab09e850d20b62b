package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/piresc/loanhub/internal/pkg/config"
	"github.com/piresc/loanhub/internal/pkg/database"
	"github.com/piresc/loanhub/internal/pkg/logger"
	"github.com/piresc/loanhub/migrations"
	"go.uber.org/zap"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/loanhub.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nil)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	postgresClient, err := database.NewPostgresClient(ctx, configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	applied, err := migrations.Apply(ctx, postgresClient.GetDB())
	if err != nil {
		zapLogger.Fatal("Migration failed", zap.Error(err))
	}

	known, err := migrations.Names()
	if err != nil {
		zapLogger.Fatal("Failed to list migrations", zap.Error(err))
	}

	zapLogger.Info("Migrations complete",
		zap.Int("applied", len(applied)),
		zap.Strings("versions", applied),
		zap.Int("known", len(known)))
}

package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/loanhub/internal/pkg/config"
	"github.com/piresc/loanhub/internal/pkg/database"
	"github.com/piresc/loanhub/internal/pkg/health"
	"github.com/piresc/loanhub/internal/pkg/logger"
	"github.com/piresc/loanhub/internal/pkg/mail"
	"github.com/piresc/loanhub/internal/pkg/middleware"
	nrpkg "github.com/piresc/loanhub/internal/pkg/newrelic"
	"github.com/piresc/loanhub/internal/pkg/server"
	notificationGateway "github.com/piresc/loanhub/services/notifications/gateway"
	notificationHandler "github.com/piresc/loanhub/services/notifications/handler/nsq"
	notificationRepository "github.com/piresc/loanhub/services/notifications/repository"
	notificationUsecase "github.com/piresc/loanhub/services/notifications/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "loanhub-notifier"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/notifier.env"
	}
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	if configs.NSQ.Address == "" && len(configs.NSQ.LookupdAddresses) == 0 {
		zapLogger.Fatal("NSQ_ADDRESS or NSQ_LOOKUPD_ADDRESSES is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	postgresClient, err := database.NewPostgresClient(ctx, configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	mailer, err := mail.NewSender(configs.Mail, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to configure mail", zap.Error(err))
	}

	notificationUC := notificationUsecase.NewNotificationUC(
		notificationRepository.NewNotificationRepo(configs, postgresClient.GetDB()),
		notificationGateway.NewNotificationGW(mailer, configs),
		configs,
	)

	consumers := notificationHandler.NewNotificationHandler(notificationUC, configs, nrApp)
	if err := consumers.InitNSQConsumers(); err != nil {
		zapLogger.Fatal("Failed to start NSQ consumers", zap.Error(err))
	}

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("nsq-consumers", func(context.Context) error {
		consumers.Stop()
		return nil
	})
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", postgresClient)

	// The notifier only serves health probes over HTTP
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(middleware.PanicRecovery(zapLogger))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	if err := server.NewGracefulServer(e, zapLogger, configs.Server).Start(); err != nil {
		zapLogger.Error("Server stopped with error", zap.Error(err))
	}

	cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cleanupCancel()
	if err := shutdown.Shutdown(cleanupCtx); err != nil {
		zapLogger.Error("Shutdown completed with errors", zap.Error(err))
	}
}

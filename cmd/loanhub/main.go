package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/piresc/loanhub/internal/pkg/config"
	"github.com/piresc/loanhub/internal/pkg/database"
	"github.com/piresc/loanhub/internal/pkg/health"
	"github.com/piresc/loanhub/internal/pkg/logger"
	"github.com/piresc/loanhub/internal/pkg/mail"
	"github.com/piresc/loanhub/internal/pkg/middleware"
	nrpkg "github.com/piresc/loanhub/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/loanhub/internal/pkg/nsq"
	"github.com/piresc/loanhub/internal/pkg/server"
	loanGateway "github.com/piresc/loanhub/services/loans/gateway"
	loanRepository "github.com/piresc/loanhub/services/loans/repository"
	loanUsecase "github.com/piresc/loanhub/services/loans/usecase"
	queryGateway "github.com/piresc/loanhub/services/queries/gateway"
	queryRepository "github.com/piresc/loanhub/services/queries/repository"
	queryUsecase "github.com/piresc/loanhub/services/queries/usecase"
	transactionRepository "github.com/piresc/loanhub/services/transactions/repository"
	transactionUsecase "github.com/piresc/loanhub/services/transactions/usecase"
	userGateway "github.com/piresc/loanhub/services/users/gateway"
	userRepository "github.com/piresc/loanhub/services/users/repository"
	userUsecase "github.com/piresc/loanhub/services/users/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "loanhub-api"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/loanhub.env"
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

	if configs.JWT.Secret == "" {
		zapLogger.Fatal("JWT_SECRET is required")
	}
	if configs.Admin.Email == "" || configs.Admin.Password == "" {
		zapLogger.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	postgresClient, err := database.NewPostgresClient(ctx, configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	mailer, err := mail.NewSender(configs.Mail, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to configure mail", zap.Error(err))
	}

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", postgresClient)
	healthService.AddChecker("redis", redisClient)

	var publisher nsqpkg.Publisher = nsqpkg.NopPublisher{}
	if configs.NSQ.Address != "" {
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
		}
		shutdown.Register("nsq", func(context.Context) error {
			producer.Stop()
			return nil
		})
		healthService.AddChecker("nsq", producer)
		publisher = producer
	} else {
		zapLogger.Warn("NSQ_ADDRESS is empty, domain events will not be published")
	}

	db := postgresClient.GetDB()

	// Users
	userUC := userUsecase.NewUserUC(
		userRepository.NewUserRepo(configs, db, redisClient),
		userGateway.NewUserGW(mailer, configs),
		configs,
	)
	if err := userUC.EnsureAdmin(ctx); err != nil {
		zapLogger.Fatal("Failed to bootstrap admin user", zap.Error(err))
	}

	// Loans
	loanUC := loanUsecase.NewLoanUC(
		loanRepository.NewLoanRepo(configs, db),
		loanGateway.NewLoanGW(publisher, configs),
		configs,
	)

	// Queries
	queryUC := queryUsecase.NewQueryUC(
		queryRepository.NewQueryRepo(configs, db),
		queryGateway.NewQueryGW(publisher, configs),
		configs,
	)

	// Transactions
	transactionUC := transactionUsecase.NewTransactionUC(
		transactionRepository.NewTransactionRepo(configs, db),
		configs,
	)

	deps := routerDeps{
		appName:       appName,
		cfg:           configs,
		zapLogger:     zapLogger,
		nrApp:         nrApp,
		health:        healthService,
		userUC:        userUC,
		loanUC:        loanUC,
		queryUC:       queryUC,
		transactionUC: transactionUC,
	}
	if configs.RateLimit.Enabled {
		deps.limiter = middleware.IPRateLimiter(configs.RateLimit.Limit, configs.RateLimit.Period, redisClient.GetClient())
	}

	e := newRouter(deps)

	if err := server.NewGracefulServer(e, zapLogger, configs.Server).Start(); err != nil {
		zapLogger.Error("Server stopped with error", zap.Error(err))
	}

	cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cleanupCancel()
	if err := shutdown.Shutdown(cleanupCtx); err != nil {
		zapLogger.Error("Shutdown completed with errors", zap.Error(err))
	}
}

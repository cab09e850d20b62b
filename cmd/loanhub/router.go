package main

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/loanhub/internal/pkg/health"
	"github.com/piresc/loanhub/internal/pkg/logger"
	"github.com/piresc/loanhub/internal/pkg/middleware"
	"github.com/piresc/loanhub/internal/pkg/models"
	nrpkg "github.com/piresc/loanhub/internal/pkg/newrelic"
	"github.com/piresc/loanhub/services/loans"
	loanHandler "github.com/piresc/loanhub/services/loans/handler"
	loanHTTP "github.com/piresc/loanhub/services/loans/handler/http"
	"github.com/piresc/loanhub/services/queries"
	queryHandler "github.com/piresc/loanhub/services/queries/handler"
	queryHTTP "github.com/piresc/loanhub/services/queries/handler/http"
	"github.com/piresc/loanhub/services/transactions"
	transactionHandler "github.com/piresc/loanhub/services/transactions/handler"
	transactionHTTP "github.com/piresc/loanhub/services/transactions/handler/http"
	"github.com/piresc/loanhub/services/users"
	userHandler "github.com/piresc/loanhub/services/users/handler"
	userHTTP "github.com/piresc/loanhub/services/users/handler/http"
)

// routerDeps is everything the HTTP API is assembled from
type routerDeps struct {
	appName   string
	cfg       *models.Config
	zapLogger *logger.ZapLogger
	nrApp     *newrelic.Application
	health    *health.HealthService

	// limiter guards the public auth routes; nil disables rate limiting
	limiter echo.MiddlewareFunc

	userUC        users.UserUC
	loanUC        loans.LoanUC
	queryUC       queries.QueryUC
	transactionUC transactions.TransactionUC
}

func newRouter(d routerDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(nrpkg.Middleware(d.nrApp))
	e.Use(middleware.RequestContextMiddleware(d.appName))
	e.Use(middleware.PanicRecovery(d.zapLogger))
	e.Use(logger.ZapEchoMiddleware(d.zapLogger))

	health.RegisterHealthEndpoints(e, d.appName, d.cfg.App.Version, d.health)

	public := e.Group("/api")
	protected := e.Group("/api", middleware.Authorize(middleware.RolePolicy, d.cfg.JWT.Secret))

	userHandler.NewHandler(
		userHTTP.NewUserHandler(d.userUC),
		userHTTP.NewAuthHandler(d.userUC),
	).RegisterRoutes(public, protected, d.limiter)

	loanHandler.NewHandler(loanHTTP.NewLoanHandler(d.loanUC)).RegisterRoutes(protected)
	queryHandler.NewHandler(queryHTTP.NewQueryHandler(d.queryUC)).RegisterRoutes(protected)
	transactionHandler.NewHandler(transactionHTTP.NewTransactionHandler(d.transactionUC)).RegisterRoutes(protected)

	return e
}

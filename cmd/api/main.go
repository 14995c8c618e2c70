package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/hngvu/payfastacy/internal/api"
	v1 "github.com/hngvu/payfastacy/internal/api/v1"
	"github.com/hngvu/payfastacy/internal/api/v1/middleware"
	"github.com/hngvu/payfastacy/internal/api/validator"
	"github.com/hngvu/payfastacy/internal/config"
	"github.com/hngvu/payfastacy/internal/database"
	"github.com/hngvu/payfastacy/internal/metrics"
	"github.com/hngvu/payfastacy/internal/repository"
	"github.com/hngvu/payfastacy/internal/service"
	"github.com/hngvu/payfastacy/pkg/bankgateway"
	"github.com/hngvu/payfastacy/pkg/httpclient"
	"github.com/hngvu/payfastacy/pkg/token"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			metrics.NewMetrics,
			validator.New,
			newTokenGenerator,
			newBankGateway,
			repository.NewPaymentRepository,
			repository.NewWebhookLogRepository,
			repository.NewTransactionManager,
			service.NewPaymentService,
			v1.NewHandler,
			newServer,
		),
		fx.Invoke(startServer),
	).Run()
}

func newTokenGenerator(cfg *config.Config) *token.Generator {
	return token.NewGenerator(cfg.Token)
}

func newBankGateway(cfg *config.Config) bankgateway.BankGateway {
	client := httpclient.NewHTTPClient(cfg.BankGateway.Timeout)
	return bankgateway.NewBankGateway(cfg.BankGateway, client)
}

func newServer() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, m *metrics.Metrics,
	logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, cfg, m, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	v1 "github.com/hngvu/payfastacy/internal/api/v1"
	"github.com/hngvu/payfastacy/internal/api/v1/middleware"
	"github.com/hngvu/payfastacy/internal/config"
	"github.com/hngvu/payfastacy/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler, cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) {
	app.Use(middleware.HTTPMetrics(m, logger))

	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	apiKey := middleware.APIKey(cfg.API.Key)

	app.Post("/v1/payment", apiKey, handler.CreatePayment)
	app.Post("/v1/payment/callback", handler.Callback)
	app.Get("/v1/payments", apiKey, handler.SearchPayments)
	app.Get("/v1/transaction/:id", apiKey, handler.GetTransaction)
}

package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eimzoapi/docs"
	"eimzoapi/internal/config"
	"eimzoapi/internal/eimzo"
	handlers "eimzoapi/internal/http/handler"
	"eimzoapi/internal/http/middleware"
	"eimzoapi/internal/otel"
	"eimzoapi/internal/service"
)

// @title E-IMZO Gateway API
// @version 1.0
// @description HTTP gateway in front of an e-imzo signature server: timestamping, verification and joining of PKCS#7 documents, plus challenge-response authentication.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	shutdown, err := otel.Init(context.Background())
	if err != nil {
		log.Fatalf("failed to configure tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(ctx)
	}()

	// One shared forwarder behind both facades, so they reuse the same
	// connection pool to the e-imzo server.
	api, err := eimzo.NewAPI(cfg.Eimzo)
	if err != nil {
		log.Fatalf("failed to configure e-imzo client: %v", err)
	}
	pkcsSvc := service.NewPkcsService(eimzo.NewClient(api))
	authSvc := service.NewAuthService(eimzo.NewAuthClient(api))

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// RequestID runs first so every later stage sees the ID.
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	prom, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(prom.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, pkcsSvc, authSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

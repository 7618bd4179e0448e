package server

import (
	"time"

	"backoffice/internal/handlers"
	"backoffice/internal/middleware"
	"backoffice/internal/repositories"
	"backoffice/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// Options configures the HTTP application.
type Options struct {
	DB *gorm.DB
	// Publisher receives change events; nil disables them.
	Publisher services.EventPublisher
	// CORSOrigins is a comma separated origin list for the browser admin UI.
	CORSOrigins string
	// AccessLog enables the per-request logger middleware.
	AccessLog bool
}

// New wires repositories, services and handlers into a Fiber app serving the REST API under /api.
func New(opts Options) *fiber.App {
	productRepo := repositories.NewGORMProductRepository(opts.DB)
	accountRepo := repositories.NewGORMAccountRepository(opts.DB)
	orderRepo := repositories.NewGORMOrderRepository(opts.DB)

	productService := services.NewProductService(productRepo, opts.Publisher)
	accountService := services.NewAccountService(accountRepo, opts.Publisher)
	orderService := services.NewOrderService(orderRepo, productRepo, accountRepo, opts.Publisher)

	productHandler := handlers.NewProductHandler(productService)
	accountHandler := handlers.NewAccountHandler(accountService)
	orderHandler := handlers.NewOrderHandler(orderService)

	app := fiber.New()

	if opts.AccessLog {
		app.Use(logger.New())
	}
	if opts.CORSOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: opts.CORSOrigins,
			AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders: "Origin, Content-Type, Accept",
		}))
	}

	counter := middleware.NewRequestCounter()
	api := app.Group("/api", counter.Handler())

	productHandler.RegisterRoutes(api)
	accountHandler.RegisterRoutes(api)
	orderHandler.RegisterRoutes(api)

	api.Get("/number-of-requests", func(c *fiber.Ctx) error {
		return c.JSON(counter.Snapshot())
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		status := fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"events": "disabled",
		}
		if opts.Publisher != nil {
			status["events"] = "enabled"
		}
		if sqlDB, err := opts.DB.DB(); err != nil || sqlDB.Ping() != nil {
			status["status"] = "degraded"
			return c.Status(fiber.StatusServiceUnavailable).JSON(status)
		}
		return c.JSON(status)
	})

	return app
}

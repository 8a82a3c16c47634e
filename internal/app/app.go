package app

import (
	"context"
	"time"

	"catalog/internal/config"
	"catalog/internal/handlers"
	"catalog/internal/middleware"
	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	httpSwagger "github.com/swaggo/http-swagger"
	"gorm.io/gorm"
)

// Broker publishes catalog events and reports its connection state.
type Broker interface {
	services.EventPublisher
	Connected() bool
}

// New builds the Fiber application with every route of the catalog API.
// broker may be nil, in which case events are not published.
func New(cfg config.Config, db *gorm.DB, broker Broker) *fiber.App {
	// --- Initialize Repositories ---
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	// --- Initialize Services ---
	var publisher services.EventPublisher
	if broker != nil {
		publisher = broker
	}
	categoryService := services.NewCategoryService(categoryRepo, publisher)
	productService := services.NewProductService(productRepo, categoryRepo, publisher)

	// --- Initialize Handlers ---
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService)

	// --- Initialize Fiber App ---
	app := fiber.New(fiber.Config{
		AppName:      "Product Catalog API",
		ErrorHandler: handlers.ErrorHandler,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(logger.New()) // Access log
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSAllowOrigins}))
	app.Use(middleware.RequestLogger())

	// --- API Routes ---
	api := app.Group("/api")
	categoryHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)

	// --- Health Check Endpoint ---
	app.Get("/health", healthHandler(db, broker))

	// --- API Docs ---
	app.Get("/swagger/*", adaptor.HTTPHandlerFunc(httpSwagger.WrapHandler))

	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
	}

	return app
}

func healthHandler(db *gorm.DB, broker Broker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := fiber.StatusOK
		database := "connected"

		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			database = "unavailable"
			status = fiber.StatusServiceUnavailable
		}

		rabbitMQ := "disabled"
		if broker != nil {
			rabbitMQ = "connected"
			if !broker.Connected() {
				rabbitMQ = "disconnected"
			}
		}

		state := "healthy"
		if status != fiber.StatusOK {
			state = "unhealthy"
		}
		return c.Status(status).JSON(fiber.Map{
			"status":   state,
			"time":     time.Now().Format(time.RFC3339),
			"database": database,
			"rabbitMQ": rabbitMQ,
		})
	}
}

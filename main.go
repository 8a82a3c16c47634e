package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/streadway/amqp"

	_ "catalog/docs" // Swagger docs
	"catalog/internal/app"
	"catalog/internal/config"
	"catalog/internal/database"
	"catalog/internal/services"
	"catalog/pkg/rabbitmq"
)

// @title Product Catalog API
// @version 1.0
// @description CRUD service for product categories and products with soft delete and product search.

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Database ---
	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if cfg.Database.Seed {
		seeded, err := database.Seed(context.Background(), db)
		if err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
		if seeded {
			log.Println("Database seeded with demo catalog")
		}
	}

	// --- Initialize RabbitMQ Client (optional) ---
	var broker app.Broker
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQ.Enabled() {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{
			URL:      cfg.RabbitMQ.URL,
			Exchange: cfg.RabbitMQ.Exchange,
		})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		broker = mqClient

		// Audit consumer: logs every catalog change.
		if err := mqClient.ConsumeCatalogEvents(logCatalogEvent); err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
	} else {
		log.Println("RABBITMQ_URL not set, catalog events are disabled")
	}

	// --- Initialize Fiber App ---
	fiberApp := app.New(cfg, db, broker)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)
	log.Printf("Swagger UI: http://localhost%s/swagger/index.html", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := fiberApp.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := fiberApp.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	if mqClient != nil {
		if err := mqClient.Close(); err != nil {
			log.Printf("Error closing RabbitMQ client: %v", err)
		}
	}
	if err := database.Close(db); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	log.Println("Server gracefully stopped")
}

func logCatalogEvent(msg amqp.Delivery) error {
	var event services.CatalogEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return err
	}
	log.Printf("Catalog event %s (%s): %s #%d", event.ID, msg.RoutingKey, event.Type, event.EntityID)
	return nil
}

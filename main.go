package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"

	"backoffice/internal/config"
	"backoffice/internal/models"
	"backoffice/internal/repositories"
	"backoffice/internal/server"
	"backoffice/internal/services"
	"backoffice/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	app, cleanup, err := NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer cleanup()

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// NewApp opens the database, connects to RabbitMQ when configured and builds the
// Fiber app. The returned cleanup releases both connections.
func NewApp(cfg *config.Config) (*fiber.App, func(), error) {
	db, err := repositories.OpenDatabase(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}

	// Change events are optional: the API keeps working without a broker.
	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Printf("Change events disabled: %v", err)
		} else {
			publisher = mqClient
			if err := mqClient.ConsumeEvents(logEvent); err != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", err)
			}
		}
	}

	seedProducts(repositories.NewGORMProductRepository(db))

	app := server.New(server.Options{
		DB:          db,
		Publisher:   publisher,
		CORSOrigins: cfg.CORSOrigins,
		AccessLog:   cfg.AccessLog,
	})

	cleanup := func() {
		if mqClient != nil {
			if err := mqClient.Close(); err != nil {
				log.Printf("Error closing RabbitMQ client: %v", err)
			}
		}
		if err := sqlDB.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}
	return app, cleanup, nil
}

func logEvent(event rabbitmq.Event) error {
	log.Printf("Received event %s: %s %d", event.ID, event.RoutingKey(), event.EntityID)
	return nil
}

// seedProducts populates an empty product table with some initial data.
func seedProducts(repo repositories.ProductRepository) {
	existing, err := repo.GetAll(models.ProductFilter{})
	if err != nil {
		log.Printf("Error checking products before seeding: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	products := []models.Product{
		{Name: "Laptop", Category: "Computers", Price: 1200.00},
		{Name: "Keyboard", Category: "Accessories", Price: 75.00},
		{Name: "Mouse", Category: "Accessories", Price: 25.00},
	}
	if err := repo.CreateAll(products); err != nil {
		log.Printf("Error seeding products: %v", err)
		return
	}
	for _, p := range products {
		log.Printf("Seeded product: %s (ID: %d)", p.Name, p.ID)
	}
}

package main

import (
	"log"

	"github.com/BhavikPahuja/eBillingBackend/internal/application/service"
	"github.com/BhavikPahuja/eBillingBackend/internal/config"
	"github.com/BhavikPahuja/eBillingBackend/internal/infrastructure/database"
	"github.com/BhavikPahuja/eBillingBackend/internal/infrastructure/repository"
	"github.com/BhavikPahuja/eBillingBackend/internal/presentation/http/handler"
	"github.com/BhavikPahuja/eBillingBackend/internal/presentation/http/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the invoice serial counter from existing bills
	if err := database.SeedSerialCounter(db); err != nil {
		log.Fatalf("Failed to seed serial counter: %v", err)
	}

	// Initialize repositories
	billRepo := repository.NewBillRepository(db)

	// Initialize services
	billService := service.NewBillService(billRepo, service.ShopDetails{
		Name:    cfg.Invoice.ShopName,
		Address: cfg.Invoice.ShopAddress,
	})

	// Initialize handlers
	handlers := &routes.Handlers{
		Bill: handler.NewBillHandler(billService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "5000"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

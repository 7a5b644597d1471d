package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sskhi1/pos-system/internal/application/service"
	"github.com/sskhi1/pos-system/internal/config"
	"github.com/sskhi1/pos-system/internal/infrastructure/database"
	"github.com/sskhi1/pos-system/internal/infrastructure/repository"
	"github.com/sskhi1/pos-system/internal/presentation/http/handler"
	"github.com/sskhi1/pos-system/internal/presentation/http/routes"
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

	// Seed the sales report row
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize repositories
	unitRepo := repository.NewUnitRepository(db)
	productRepo := repository.NewProductRepository(db)
	receiptRepo := repository.NewReceiptRepository(db, cfg.Receipt.PricingMode)
	reportRepo := repository.NewReportRepository(db)

	// Initialize services
	unitService := service.NewUnitService(unitRepo)
	productService := service.NewProductService(productRepo, unitRepo)
	receiptService := service.NewReceiptService(receiptRepo)
	reportService := service.NewReportService(reportRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Unit:    handler.NewUnitHandler(unitService),
		Product: handler.NewProductHandler(productService),
		Receipt: handler.NewReceiptHandler(receiptService),
		Report:  handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{Cfg: cfg})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)
	log.Printf("Receipt pricing mode: %s", cfg.Receipt.PricingMode)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

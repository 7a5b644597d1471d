package database

import (
	"fmt"
	"log"

	"github.com/sskhi1/pos-system/internal/config"
	"github.com/sskhi1/pos-system/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Catalog entities
		&entity.Unit{},
		&entity.Product{},

		// Receipt entities
		&entity.Receipt{},
		&entity.ReceiptItem{},

		// Report entities
		&entity.SalesReport{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData inserts the zero-valued sales report row if it is absent.
// The report repository also creates it lazily on first read; seeding here
// keeps a fresh deployment queryable before any receipt activity.
func SeedDefaultData(db *gorm.DB) error {
	report := entity.SalesReport{ID: entity.SalesReportID}
	if err := db.Where(entity.SalesReport{ID: entity.SalesReportID}).FirstOrCreate(&report).Error; err != nil {
		return fmt.Errorf("failed to seed sales report row: %w", err)
	}
	return nil
}

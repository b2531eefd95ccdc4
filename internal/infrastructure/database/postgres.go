package database

import (
	"fmt"
	"log"

	"github.com/BhavikPahuja/eBillingBackend/internal/config"
	"github.com/BhavikPahuja/eBillingBackend/internal/domain/entity"
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

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Bill{},
		&entity.BillItem{},
		&entity.SerialCounter{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedSerialCounter initializes the invoice serial counter from the
// highest serial already stored, so the atomic sequence continues a
// dataset that predates it. Existing counters are left untouched.
func SeedSerialCounter(db *gorm.DB) error {
	err := db.Exec(`
		INSERT INTO serial_counters (name, value)
		SELECT 'bills', COALESCE(MAX(serial), 0) FROM bills
		ON CONFLICT (name) DO NOTHING`).Error
	if err != nil {
		return fmt.Errorf("failed to seed serial counter: %w", err)
	}
	return nil
}

package database

import (
	"fmt"

	"wareFlow/domain"
	"wareFlow/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitPostgres(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	if err := db.AutoMigrate(
		&domain.Admin{},
		&domain.Customer{},
		&domain.Category{},
		&domain.Product{},
		&domain.StockIn{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.OrderLog{},
		&domain.Payment{},
		&domain.ImportBatch{},
		&domain.ImportFailed{},
		&domain.ImportPendingPrice{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

package postgres

import (
	"context"
	"fmt"

	"wareFlow/domain"

	"gorm.io/gorm"
)

type StockInRepository struct {
	DB *gorm.DB
}

func NewStockInRepository(db *gorm.DB) *StockInRepository {
	return &StockInRepository{
		DB: db,
	}
}

// CreateWithStockIncrement persists the receiving record and bumps the
// product's on-hand quantity in one transaction. The increment is applied
// SQL-side so concurrent receipts cannot lose updates.
func (r *StockInRepository) CreateWithStockIncrement(ctx context.Context, record *domain.StockIn) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var newStock int
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to create stock-in record: %w", err)
		}

		result := tx.Model(&domain.Product{}).
			Where("id = ?", record.ProductID).
			UpdateColumn("stock", gorm.Expr("stock + ?", record.Quantity))
		if result.Error != nil {
			return fmt.Errorf("failed to increment stock: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		var product domain.Product
		if err := tx.Select("stock").First(&product, record.ProductID).Error; err != nil {
			return fmt.Errorf("failed to read new stock: %w", err)
		}
		newStock = product.Stock

		return nil
	})
	if err != nil {
		return 0, err
	}

	return newStock, nil
}

func (r *StockInRepository) FindAll(ctx context.Context) ([]domain.StockIn, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var records []domain.StockIn
	err := r.DB.WithContext(ctx).Preload("Product").Order("created_at DESC").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find stock-in records: %w", err)
	}

	return records, nil
}

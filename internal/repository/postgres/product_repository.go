package postgres

import (
	"context"
	"errors"
	"fmt"

	"wareFlow/domain"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		DB: db,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// FindByID resolves a product regardless of its active flag so historical
// stock-in and order-item rows stay joinable after a soft delete.
func (r *ProductRepository) FindByID(ctx context.Context, id uint) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	var product domain.Product
	err := r.DB.WithContext(ctx).Preload("Category").First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, domain.ErrNotFound
		}
		return domain.Product{}, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

func (r *ProductRepository) FindByBarcode(ctx context.Context, barcode string) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	var product domain.Product
	err := r.DB.WithContext(ctx).Where("barcode = ?", barcode).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, domain.ErrNotFound
		}
		return domain.Product{}, fmt.Errorf("failed to find product by barcode: %w", err)
	}

	return product, nil
}

// FindActive lists active products, optionally narrowed by a name substring
// and an exact category match.
func (r *ProductRepository) FindActive(ctx context.Context, keyword string, categoryID uint) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	query := r.DB.WithContext(ctx).Preload("Category").Where("is_active = ?", true)
	if keyword != "" {
		query = query.Where("name LIKE ?", "%"+keyword+"%")
	}
	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var products []domain.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	return products, nil
}

// UpdateFields applies a partial update; only the given columns change.
func (r *ProductRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// SoftDelete flips the active flag; the row is retained for historical joins.
func (r *ProductRepository) SoftDelete(ctx context.Context, id uint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *ProductRepository) CountActive(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).Model(&domain.Product{}).Where("is_active = ?", true).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}

func (r *ProductRepository) CountLowStock(ctx context.Context, threshold int) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).Model(&domain.Product{}).
		Where("stock < ? AND is_active = ?", threshold, true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count low stock products: %w", err)
	}

	return count, nil
}

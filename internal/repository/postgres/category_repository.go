package postgres

import (
	"context"
	"errors"
	"fmt"

	"wareFlow/domain"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		DB: db,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return domain.Category{}, fmt.Errorf("context error: %w", err)
	}

	var category domain.Category
	err := r.DB.WithContext(ctx).First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Category{}, domain.ErrNotFound
		}
		return domain.Category{}, fmt.Errorf("failed to find category: %w", err)
	}

	return category, nil
}

// EnsureDefault guarantees the configured fallback category exists so the
// import pipeline never has to look it up by name.
func (r *CategoryRepository) EnsureDefault(ctx context.Context, id uint) error {
	_, err := r.FindByID(ctx, id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	return r.Create(ctx, &domain.Category{ID: id, Name: domain.UncategorizedName})
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var categories []domain.Category
	if err := r.DB.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to find categories: %w", err)
	}

	return categories, nil
}

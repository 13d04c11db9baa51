package postgres

import (
	"context"
	"fmt"

	"wareFlow/domain"

	"gorm.io/gorm"
)

type PaymentsRepository struct {
	DB *gorm.DB
}

func NewPaymentsRepository(db *gorm.DB) *PaymentsRepository {
	return &PaymentsRepository{
		DB: db,
	}
}

func (r *PaymentsRepository) Create(ctx context.Context, payment *domain.Payment) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

func (r *PaymentsRepository) FindAll(ctx context.Context) ([]domain.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var payments []domain.Payment
	err := r.DB.WithContext(ctx).Preload("Order").Order("created_at DESC").Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find payments: %w", err)
	}

	return payments, nil
}

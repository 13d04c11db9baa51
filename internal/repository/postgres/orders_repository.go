package postgres

import (
	"context"
	"errors"
	"fmt"

	"wareFlow/domain"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

// Create persists the order together with its items and initial log entry.
// gorm writes the associations in one transaction, so an order is never
// visible half-written.
func (r *OrdersRepository) Create(ctx context.Context, order *domain.Order) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func (r *OrdersRepository) FindByID(ctx context.Context, id uint) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("context error: %w", err)
	}

	var order domain.Order
	err := r.DB.WithContext(ctx).
		Preload("Customer").
		Preload("Items.Product").
		Preload("Logs", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, domain.ErrNotFound
		}
		return domain.Order{}, fmt.Errorf("failed to find order: %w", err)
	}

	return order, nil
}

// FindAll lists orders most recent first, optionally filtered by status.
func (r *OrdersRepository) FindAll(ctx context.Context, status int) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	query := r.DB.WithContext(ctx).Preload("Customer").Order("created_at DESC")
	if status != 0 {
		query = query.Where("status = ?", status)
	}

	var orders []domain.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus writes the new status (plus tracking fields when set), appends
// the audit log entry, and — when decrementStock is set — subtracts each
// item's quantity from its product, all in one transaction.
func (r *OrdersRepository) UpdateStatus(ctx context.Context, order *domain.Order, log domain.OrderLog, decrementStock bool) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updateData := map[string]interface{}{
			"status": order.Status,
		}
		if order.TrackingNumber != "" {
			updateData["tracking_number"] = order.TrackingNumber
		}
		if order.LogisticsCompany != "" {
			updateData["logistics_company"] = order.LogisticsCompany
		}

		result := tx.Model(&domain.Order{}).Where("id = ?", order.ID).Updates(updateData)
		if result.Error != nil {
			return fmt.Errorf("failed to update order status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		if err := tx.Create(&log).Error; err != nil {
			return fmt.Errorf("failed to append order log: %w", err)
		}

		if decrementStock {
			for _, item := range order.Items {
				result := tx.Model(&domain.Product{}).
					Where("id = ?", item.ProductID).
					UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
				if result.Error != nil {
					return fmt.Errorf("failed to decrement stock for product %d: %w", item.ProductID, result.Error)
				}
			}
		}

		return nil
	})
}

func (r *OrdersRepository) CountByStatus(ctx context.Context, status int) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).Model(&domain.Order{}).Where("status = ?", status).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}

	return count, nil
}

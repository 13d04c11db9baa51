package postgres

import (
	"context"
	"errors"
	"fmt"

	"wareFlow/domain"

	"gorm.io/gorm"
)

type ImportsRepository struct {
	DB *gorm.DB
}

func NewImportsRepository(db *gorm.DB) *ImportsRepository {
	return &ImportsRepository{
		DB: db,
	}
}

// SaveOutcome persists one whole import run — batch summary, accepted
// products, pending-price links and failed rows — in a single transaction.
func (r *ImportsRepository) SaveOutcome(ctx context.Context, outcome *domain.ImportOutcome) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&outcome.Batch).Error; err != nil {
			return fmt.Errorf("failed to create import batch: %w", err)
		}

		for i := range outcome.Products {
			entry := &outcome.Products[i]
			if err := tx.Create(&entry.Product).Error; err != nil {
				return fmt.Errorf("failed to create imported product: %w", err)
			}
			if entry.PendingPrice {
				pending := domain.ImportPendingPrice{
					BatchID:   outcome.Batch.ID,
					ProductID: entry.Product.ID,
				}
				if err := tx.Create(&pending).Error; err != nil {
					return fmt.Errorf("failed to create pending price record: %w", err)
				}
			}
		}

		for i := range outcome.FailedRows {
			outcome.FailedRows[i].BatchID = outcome.Batch.ID
			if err := tx.Create(&outcome.FailedRows[i]).Error; err != nil {
				return fmt.Errorf("failed to create import failed record: %w", err)
			}
		}

		return nil
	})
}

func (r *ImportsRepository) FindAllBatches(ctx context.Context) ([]domain.ImportBatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var batches []domain.ImportBatch
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&batches).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find import batches: %w", err)
	}

	return batches, nil
}

func (r *ImportsRepository) FindBatchByID(ctx context.Context, id uint) (domain.ImportBatch, error) {
	if err := ctx.Err(); err != nil {
		return domain.ImportBatch{}, fmt.Errorf("context error: %w", err)
	}

	var batch domain.ImportBatch
	err := r.DB.WithContext(ctx).First(&batch, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ImportBatch{}, domain.ErrNotFound
		}
		return domain.ImportBatch{}, fmt.Errorf("failed to find import batch: %w", err)
	}

	return batch, nil
}

// RollbackBatch reverses one import: pending-price links, failed rows, the
// products those pending rows introduced (confirmed or not), then the batch
// itself, atomically. Products from the batch that were imported with a price
// are not touched.
func (r *ImportsRepository) RollbackBatch(ctx context.Context, batchID uint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pending []domain.ImportPendingPrice
		if err := tx.Where("batch_id = ?", batchID).Find(&pending).Error; err != nil {
			return fmt.Errorf("failed to find pending price records: %w", err)
		}

		productIDs := make([]uint, 0, len(pending))
		for _, p := range pending {
			productIDs = append(productIDs, p.ProductID)
		}

		if err := tx.Where("batch_id = ?", batchID).Delete(&domain.ImportPendingPrice{}).Error; err != nil {
			return fmt.Errorf("failed to delete pending price records: %w", err)
		}

		if err := tx.Where("batch_id = ?", batchID).Delete(&domain.ImportFailed{}).Error; err != nil {
			return fmt.Errorf("failed to delete import failed records: %w", err)
		}

		if len(productIDs) > 0 {
			if err := tx.Delete(&domain.Product{}, productIDs).Error; err != nil {
				return fmt.Errorf("failed to delete imported products: %w", err)
			}
		}

		result := tx.Delete(&domain.ImportBatch{}, batchID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete import batch: %w", result.Error)
		}

		return nil
	})
}

func (r *ImportsRepository) FindFailedByBatch(ctx context.Context, batchID uint) ([]domain.ImportFailed, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var records []domain.ImportFailed
	err := r.DB.WithContext(ctx).Where("batch_id = ?", batchID).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find import failed records: %w", err)
	}

	return records, nil
}

func (r *ImportsRepository) DeleteFailedByBatch(ctx context.Context, batchID uint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Where("batch_id = ?", batchID).Delete(&domain.ImportFailed{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete import failed records: %w", err)
	}

	return nil
}

func (r *ImportsRepository) FindPendingUnconfirmed(ctx context.Context) ([]domain.ImportPendingPrice, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var records []domain.ImportPendingPrice
	err := r.DB.WithContext(ctx).Preload("Product").Where("confirmed = ?", false).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find pending price records: %w", err)
	}

	return records, nil
}

func (r *ImportsRepository) FindPendingByID(ctx context.Context, id uint) (domain.ImportPendingPrice, error) {
	if err := ctx.Err(); err != nil {
		return domain.ImportPendingPrice{}, fmt.Errorf("context error: %w", err)
	}

	var record domain.ImportPendingPrice
	err := r.DB.WithContext(ctx).First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ImportPendingPrice{}, domain.ErrNotFound
		}
		return domain.ImportPendingPrice{}, fmt.Errorf("failed to find pending price record: %w", err)
	}

	return record, nil
}

// ConfirmPending sets the product's sell price and flips the record's
// confirmed flag in one transaction.
func (r *ImportsRepository) ConfirmPending(ctx context.Context, recordID, productID uint, sellPrice float64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&domain.Product{}).Where("id = ?", productID).Update("sell_price", sellPrice).Error
		if err != nil {
			return fmt.Errorf("failed to set sell price: %w", err)
		}

		err = tx.Model(&domain.ImportPendingPrice{}).Where("id = ?", recordID).Update("confirmed", true).Error
		if err != nil {
			return fmt.Errorf("failed to confirm pending price record: %w", err)
		}

		return nil
	})
}

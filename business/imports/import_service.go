package imports

import (
	"bytes"
	"context"
	"fmt"

	"wareFlow/domain"
	"wareFlow/pkg/logger"
	"wareFlow/pkg/metrics"

	"github.com/xuri/excelize/v2"
)

// ImportsRepository contract interface
type ImportsRepository interface {
	SaveOutcome(ctx context.Context, outcome *domain.ImportOutcome) error
	FindAllBatches(ctx context.Context) ([]domain.ImportBatch, error)
	FindBatchByID(ctx context.Context, id uint) (domain.ImportBatch, error)
	RollbackBatch(ctx context.Context, batchID uint) error
	FindFailedByBatch(ctx context.Context, batchID uint) ([]domain.ImportFailed, error)
	DeleteFailedByBatch(ctx context.Context, batchID uint) error
	FindPendingUnconfirmed(ctx context.Context) ([]domain.ImportPendingPrice, error)
	FindPendingByID(ctx context.Context, id uint) (domain.ImportPendingPrice, error)
	ConfirmPending(ctx context.Context, recordID, productID uint, sellPrice float64) error
}

type BatchResult struct {
	BatchID      uint `json:"batch_id"`
	Total        int  `json:"total"`
	Success      int  `json:"success"`
	Failed       int  `json:"failed"`
	PendingPrice int  `json:"pending_price"`
}

type BatchView struct {
	ID           uint   `json:"id"`
	BatchName    string `json:"batch_name"`
	Total        int    `json:"total"`
	Success      int    `json:"success"`
	Failed       int    `json:"failed"`
	PendingPrice int    `json:"pending_price"`
	CreatedAt    string `json:"created_at"`
}

type PendingPriceView struct {
	ID          uint     `json:"id"`
	ProductID   uint     `json:"product_id"`
	ProductName string   `json:"product_name"`
	CostPrice   *float64 `json:"cost_price"`
	SellPrice   *float64 `json:"sell_price"`
	Spec        string   `json:"spec"`
}

const timeLayout = "2006-01-02 15:04:05"

type importService struct {
	importsRepo       ImportsRepository
	defaultCategoryID uint
}

func NewImportService(importsRepo ImportsRepository, defaultCategoryID uint) *importService {
	return &importService{
		importsRepo:       importsRepo,
		defaultCategoryID: defaultCategoryID,
	}
}

// ImportWorkbook runs the whole pipeline: decode the mapping, read the first
// worksheet, classify every data row, and persist the outcome atomically.
// Row-level failures never abort the batch; they are routed to the failed
// bucket and the pipeline always completes.
func (s *importService) ImportWorkbook(ctx context.Context, filename string, data []byte, columnMapJSON string) (BatchResult, error) {
	if err := ctx.Err(); err != nil {
		return BatchResult{}, fmt.Errorf("context error: %w", err)
	}

	columnMap, err := ParseColumnMap(columnMapJSON)
	if err != nil {
		logger.Error("Rejected import: bad column mapping", err)
		return BatchResult{}, err
	}

	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		logger.Error("Rejected import: unreadable workbook", err)
		return BatchResult{}, fmt.Errorf("%w: unable to read workbook: %v", domain.ErrValidation, err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return BatchResult{}, fmt.Errorf("%w: workbook has no worksheets", domain.ErrValidation)
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return BatchResult{}, fmt.Errorf("%w: unable to read worksheet: %v", domain.ErrValidation, err)
	}

	outcome := domain.ImportOutcome{
		Batch: domain.ImportBatch{BatchName: filename},
	}
	pendingPrice := 0

	// First row is the header.
	for i := 1; i < len(rows); i++ {
		result := classifyRow(rows[i], columnMap)

		switch result.kind {
		case rowSkipped:
			metrics.ImportRowsTotal.WithLabelValues("skipped").Inc()

		case rowFailed:
			outcome.Batch.Failed++
			outcome.FailedRows = append(outcome.FailedRows, domain.ImportFailed{
				RowData: result.summary,
				Reason:  result.reason,
			})
			metrics.ImportRowsTotal.WithLabelValues("failed").Inc()

		case rowAccepted:
			outcome.Batch.Success++
			outcome.Products = append(outcome.Products, domain.ImportProduct{
				Product:      result.product(s.defaultCategoryID),
				PendingPrice: result.pendingPrice,
			})
			metrics.ImportRowsTotal.WithLabelValues("success").Inc()
			if result.pendingPrice {
				pendingPrice++
				metrics.ImportRowsTotal.WithLabelValues("pending_price").Inc()
			}
		}
	}

	outcome.Batch.Total = outcome.Batch.Success + outcome.Batch.Failed
	outcome.Batch.PendingPrice = pendingPrice

	if err := s.importsRepo.SaveOutcome(ctx, &outcome); err != nil {
		logger.Error("Failed to persist import batch", err)
		return BatchResult{}, err
	}

	logger.Info("Import batch completed",
		"batch", filename,
		"success", outcome.Batch.Success,
		"failed", outcome.Batch.Failed,
		"pending_price", pendingPrice)

	return BatchResult{
		BatchID:      outcome.Batch.ID,
		Total:        outcome.Batch.Total,
		Success:      outcome.Batch.Success,
		Failed:       outcome.Batch.Failed,
		PendingPrice: pendingPrice,
	}, nil
}

func (s *importService) ListBatches(ctx context.Context) ([]BatchView, error) {
	batches, err := s.importsRepo.FindAllBatches(ctx)
	if err != nil {
		logger.Error("Failed to list import batches", err)
		return nil, err
	}

	views := make([]BatchView, 0, len(batches))
	for _, batch := range batches {
		views = append(views, BatchView{
			ID:           batch.ID,
			BatchName:    batch.BatchName,
			Total:        batch.Total,
			Success:      batch.Success,
			Failed:       batch.Failed,
			PendingPrice: batch.PendingPrice,
			CreatedAt:    batch.CreatedAt.Format(timeLayout),
		})
	}

	return views, nil
}

// RollbackBatch reverses a prior import. Products linked through pending-price
// records are hard-deleted whether or not their price was confirmed since.
func (s *importService) RollbackBatch(ctx context.Context, batchID uint) error {
	if _, err := s.importsRepo.FindBatchByID(ctx, batchID); err != nil {
		return err
	}

	if err := s.importsRepo.RollbackBatch(ctx, batchID); err != nil {
		logger.Error("Failed to rollback import batch", err)
		return err
	}

	logger.Info("Import batch rolled back", "batch_id", batchID)

	return nil
}

func (s *importService) ListFailed(ctx context.Context, batchID uint) ([]domain.ImportFailed, error) {
	return s.importsRepo.FindFailedByBatch(ctx, batchID)
}

func (s *importService) ClearFailed(ctx context.Context, batchID uint) error {
	return s.importsRepo.DeleteFailedByBatch(ctx, batchID)
}

// ListPendingPrices returns unconfirmed records with the product's current
// name and prices (a live view, not a snapshot from import time).
func (s *importService) ListPendingPrices(ctx context.Context) ([]PendingPriceView, error) {
	records, err := s.importsRepo.FindPendingUnconfirmed(ctx)
	if err != nil {
		logger.Error("Failed to list pending price records", err)
		return nil, err
	}

	views := make([]PendingPriceView, 0, len(records))
	for _, record := range records {
		view := PendingPriceView{
			ID:        record.ID,
			ProductID: record.ProductID,
		}
		if record.Product != nil {
			view.ProductName = record.Product.Name
			view.CostPrice = record.Product.CostPrice
			view.SellPrice = record.Product.SellPrice
			view.Spec = record.Product.Spec
		}
		views = append(views, view)
	}

	return views, nil
}

// ConfirmPendingPrice sets the product's sell price and marks the record
// confirmed. The price is stored as supplied.
func (s *importService) ConfirmPendingPrice(ctx context.Context, recordID uint, sellPrice float64) error {
	record, err := s.importsRepo.FindPendingByID(ctx, recordID)
	if err != nil {
		return err
	}

	if err := s.importsRepo.ConfirmPending(ctx, record.ID, record.ProductID, sellPrice); err != nil {
		logger.Error("Failed to confirm pending price", err)
		return err
	}

	logger.Info("Pending price confirmed", "record_id", recordID, "sell_price", sellPrice)

	return nil
}

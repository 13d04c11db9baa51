package stock

import (
	"context"
	"fmt"

	"wareFlow/domain"
	"wareFlow/pkg/logger"
)

// StockInRepository contract interface
type StockInRepository interface {
	CreateWithStockIncrement(ctx context.Context, record *domain.StockIn) (int, error)
	FindAll(ctx context.Context) ([]domain.StockIn, error)
}

// ProductRepository is the slice of the product repository the ledger needs.
type ProductRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Product, error)
}

type RecordInput struct {
	ProductID uint
	Quantity  int
	CostPrice float64
	AdminID   uint
	Remark    string
}

type RecordView struct {
	ID          uint    `json:"id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	CostPrice   float64 `json:"cost_price"`
	TotalAmount float64 `json:"total_amount"`
	Remark      string  `json:"remark"`
	CreatedAt   string  `json:"created_at"`
}

const timeLayout = "2006-01-02 15:04:05"

type stockService struct {
	stockRepo   StockInRepository
	productRepo ProductRepository
}

func NewStockService(stockRepo StockInRepository, productRepo ProductRepository) *stockService {
	return &stockService{
		stockRepo:   stockRepo,
		productRepo: productRepo,
	}
}

// RecordStockIn appends a receiving record and bumps the product's stock
// atomically. Entries are never reversed or edited afterwards.
func (s *stockService) RecordStockIn(ctx context.Context, input RecordInput) (domain.StockIn, int, error) {
	if err := ctx.Err(); err != nil {
		return domain.StockIn{}, 0, fmt.Errorf("context error: %w", err)
	}

	if _, err := s.productRepo.FindByID(ctx, input.ProductID); err != nil {
		return domain.StockIn{}, 0, err
	}

	record := domain.StockIn{
		ProductID:   input.ProductID,
		Quantity:    input.Quantity,
		CostPrice:   input.CostPrice,
		TotalAmount: input.CostPrice * float64(input.Quantity),
		AdminID:     input.AdminID,
		Remark:      input.Remark,
	}

	newStock, err := s.stockRepo.CreateWithStockIncrement(ctx, &record)
	if err != nil {
		logger.Error("Failed to record stock-in", err)
		return domain.StockIn{}, 0, err
	}

	logger.Info("Stock-in recorded",
		"product_id", input.ProductID, "quantity", input.Quantity, "new_stock", newStock)

	return record, newStock, nil
}

func (s *stockService) List(ctx context.Context) ([]RecordView, error) {
	records, err := s.stockRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to list stock-in records", err)
		return nil, err
	}

	views := make([]RecordView, 0, len(records))
	for _, record := range records {
		view := RecordView{
			ID:          record.ID,
			ProductID:   record.ProductID,
			Quantity:    record.Quantity,
			CostPrice:   record.CostPrice,
			TotalAmount: record.TotalAmount,
			Remark:      record.Remark,
			CreatedAt:   record.CreatedAt.Format(timeLayout),
		}
		if record.Product != nil {
			view.ProductName = record.Product.Name
		}
		views = append(views, view)
	}

	return views, nil
}

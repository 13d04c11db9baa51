package stock

import (
	"context"
	"errors"
	"testing"

	"wareFlow/domain"
)

type fakeStockRepo struct {
	records []domain.StockIn
	stock   int
}

func (f *fakeStockRepo) CreateWithStockIncrement(ctx context.Context, record *domain.StockIn) (int, error) {
	record.ID = uint(len(f.records) + 1)
	f.records = append(f.records, *record)
	f.stock += record.Quantity
	return f.stock, nil
}

func (f *fakeStockRepo) FindAll(ctx context.Context) ([]domain.StockIn, error) {
	return f.records, nil
}

type fakeProductRepo struct {
	known map[uint]bool
}

func (f fakeProductRepo) FindByID(ctx context.Context, id uint) (domain.Product, error) {
	if !f.known[id] {
		return domain.Product{}, domain.ErrNotFound
	}
	return domain.Product{ID: id, Name: "Rice"}, nil
}

func TestRecordStockIn_ComputesTotalAndIncrements(t *testing.T) {
	repo := &fakeStockRepo{stock: 5}
	service := NewStockService(repo, fakeProductRepo{known: map[uint]bool{1: true}})

	record, newStock, err := service.RecordStockIn(context.Background(), RecordInput{
		ProductID: 1,
		Quantity:  10,
		CostPrice: 2.5,
		AdminID:   1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.TotalAmount != 25 {
		t.Errorf("total = %v, want 25", record.TotalAmount)
	}
	if newStock != 15 {
		t.Errorf("new stock = %d, want 15", newStock)
	}
	if len(repo.records) != 1 {
		t.Fatalf("records = %d, want 1", len(repo.records))
	}
}

func TestRecordStockIn_UnknownProduct(t *testing.T) {
	service := NewStockService(&fakeStockRepo{}, fakeProductRepo{})

	_, _, err := service.RecordStockIn(context.Background(), RecordInput{ProductID: 9, Quantity: 1})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

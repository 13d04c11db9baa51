package imports

import (
	"context"
	"errors"
	"testing"

	"wareFlow/domain"

	"github.com/xuri/excelize/v2"
)

type fakeImportsRepo struct {
	saved       *domain.ImportOutcome
	batches     map[uint]domain.ImportBatch
	pending     map[uint]domain.ImportPendingPrice
	rolledBack  []uint
	confirmed   map[uint]float64
	clearedFail []uint
}

func newFakeImportsRepo() *fakeImportsRepo {
	return &fakeImportsRepo{
		batches:   make(map[uint]domain.ImportBatch),
		pending:   make(map[uint]domain.ImportPendingPrice),
		confirmed: make(map[uint]float64),
	}
}

func (f *fakeImportsRepo) SaveOutcome(ctx context.Context, outcome *domain.ImportOutcome) error {
	outcome.Batch.ID = uint(len(f.batches) + 1)
	f.batches[outcome.Batch.ID] = outcome.Batch
	f.saved = outcome
	return nil
}

func (f *fakeImportsRepo) FindAllBatches(ctx context.Context) ([]domain.ImportBatch, error) {
	batches := make([]domain.ImportBatch, 0, len(f.batches))
	for _, batch := range f.batches {
		batches = append(batches, batch)
	}
	return batches, nil
}

func (f *fakeImportsRepo) FindBatchByID(ctx context.Context, id uint) (domain.ImportBatch, error) {
	batch, ok := f.batches[id]
	if !ok {
		return domain.ImportBatch{}, domain.ErrNotFound
	}
	return batch, nil
}

func (f *fakeImportsRepo) RollbackBatch(ctx context.Context, batchID uint) error {
	f.rolledBack = append(f.rolledBack, batchID)
	delete(f.batches, batchID)
	return nil
}

func (f *fakeImportsRepo) FindFailedByBatch(ctx context.Context, batchID uint) ([]domain.ImportFailed, error) {
	return nil, nil
}

func (f *fakeImportsRepo) DeleteFailedByBatch(ctx context.Context, batchID uint) error {
	f.clearedFail = append(f.clearedFail, batchID)
	return nil
}

func (f *fakeImportsRepo) FindPendingUnconfirmed(ctx context.Context) ([]domain.ImportPendingPrice, error) {
	records := make([]domain.ImportPendingPrice, 0, len(f.pending))
	for _, record := range f.pending {
		if !record.Confirmed {
			records = append(records, record)
		}
	}
	return records, nil
}

func (f *fakeImportsRepo) FindPendingByID(ctx context.Context, id uint) (domain.ImportPendingPrice, error) {
	record, ok := f.pending[id]
	if !ok {
		return domain.ImportPendingPrice{}, domain.ErrNotFound
	}
	return record, nil
}

func (f *fakeImportsRepo) ConfirmPending(ctx context.Context, recordID, productID uint, sellPrice float64) error {
	f.confirmed[recordID] = sellPrice
	record := f.pending[recordID]
	record.Confirmed = true
	f.pending[recordID] = record
	return nil
}

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	workbook := excelize.NewFile()
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := workbook.SetSheetRow(sheet, cellRef, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestImportWorkbook_BucketsRows(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"name", "cost", "sell", "stock"},
		{"Rice", 10, 15, 5},
		{"Flour", 8, "", 3},
		{"", 2, 3, 1},
		{"", "", "", ""},
	})

	repo := newFakeImportsRepo()
	service := NewImportService(repo, 1)

	result, err := service.ImportWorkbook(context.Background(), "catalog.xlsx", data,
		`{"name": 0, "cost_price": 1, "sell_price": 2, "stock": 3}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Success != 2 {
		t.Errorf("success = %d, want 2", result.Success)
	}
	if result.Failed != 1 {
		t.Errorf("failed = %d, want 1", result.Failed)
	}
	if result.PendingPrice != 1 {
		t.Errorf("pending = %d, want 1", result.PendingPrice)
	}
	if result.Total != 3 {
		t.Errorf("total = %d, want 3 (blank rows are not counted)", result.Total)
	}

	if repo.saved == nil {
		t.Fatal("outcome was not persisted")
	}
	if repo.saved.Batch.BatchName != "catalog.xlsx" {
		t.Errorf("batch name = %q", repo.saved.Batch.BatchName)
	}
	if len(repo.saved.Products) != 2 {
		t.Fatalf("persisted products = %d, want 2", len(repo.saved.Products))
	}
	if !repo.saved.Products[1].PendingPrice {
		t.Error("second product should be flagged pending price")
	}
	if repo.saved.Products[0].Product.CategoryID != 1 {
		t.Errorf("imported product category = %d, want default 1", repo.saved.Products[0].Product.CategoryID)
	}
	if len(repo.saved.FailedRows) != 1 || repo.saved.FailedRows[0].Reason != "product name is empty" {
		t.Errorf("unexpected failed rows: %+v", repo.saved.FailedRows)
	}
}

func TestImportWorkbook_MalformedColumnMapRejectsUpload(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{{"name"}})

	service := NewImportService(newFakeImportsRepo(), 1)

	_, err := service.ImportWorkbook(context.Background(), "catalog.xlsx", data, "{broken")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestImportWorkbook_NotASpreadsheet(t *testing.T) {
	service := NewImportService(newFakeImportsRepo(), 1)

	_, err := service.ImportWorkbook(context.Background(), "notes.txt", []byte("plain text"), "")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRollbackBatch_UnknownBatch(t *testing.T) {
	service := NewImportService(newFakeImportsRepo(), 1)

	err := service.RollbackBatch(context.Background(), 42)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRollbackBatch_DelegatesToRepo(t *testing.T) {
	repo := newFakeImportsRepo()
	repo.batches[7] = domain.ImportBatch{ID: 7}
	service := NewImportService(repo, 1)

	if err := service.RollbackBatch(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.rolledBack) != 1 || repo.rolledBack[0] != 7 {
		t.Fatalf("rollback calls = %v, want [7]", repo.rolledBack)
	}
}

func TestConfirmPendingPrice(t *testing.T) {
	repo := newFakeImportsRepo()
	repo.pending[3] = domain.ImportPendingPrice{ID: 3, ProductID: 9}
	service := NewImportService(repo, 1)

	if err := service.ConfirmPendingPrice(context.Background(), 3, 19.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.confirmed[3] != 19.5 {
		t.Fatalf("confirmed price = %v, want 19.5", repo.confirmed[3])
	}

	err := service.ConfirmPendingPrice(context.Background(), 404, 10)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

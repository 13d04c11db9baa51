package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wareFlow/business/imports"
	"wareFlow/domain"

	"github.com/labstack/echo/v4"
)

type fakeImportsService struct {
	confirmedID    uint
	confirmedPrice float64
	confirmCalls   int
}

func (f *fakeImportsService) ImportWorkbook(ctx context.Context, filename string, data []byte, columnMapJSON string) (imports.BatchResult, error) {
	return imports.BatchResult{}, nil
}

func (f *fakeImportsService) ListBatches(ctx context.Context) ([]imports.BatchView, error) {
	return nil, nil
}

func (f *fakeImportsService) RollbackBatch(ctx context.Context, batchID uint) error {
	return nil
}

func (f *fakeImportsService) ListFailed(ctx context.Context, batchID uint) ([]domain.ImportFailed, error) {
	return nil, nil
}

func (f *fakeImportsService) ClearFailed(ctx context.Context, batchID uint) error {
	return nil
}

func (f *fakeImportsService) ListPendingPrices(ctx context.Context) ([]imports.PendingPriceView, error) {
	return nil, nil
}

func (f *fakeImportsService) ConfirmPendingPrice(ctx context.Context, recordID uint, sellPrice float64) error {
	f.confirmCalls++
	f.confirmedID = recordID
	f.confirmedPrice = sellPrice
	return nil
}

func confirmPriceRequest(t *testing.T, handler *ImportsHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/imports/pending-price/3", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetPath("/api/imports/pending-price/:id")
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := handler.ConfirmPendingPrice(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestConfirmPendingPrice_AcceptsExplicitZero(t *testing.T) {
	service := &fakeImportsService{}
	handler := NewImportsHandler(service)

	rec := confirmPriceRequest(t, handler, `{"sell_price": 0}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if service.confirmCalls != 1 {
		t.Fatalf("confirm calls = %d, want 1", service.confirmCalls)
	}
	if service.confirmedID != 3 || service.confirmedPrice != 0 {
		t.Fatalf("confirmed id=%d price=%v, want id=3 price=0", service.confirmedID, service.confirmedPrice)
	}
}

func TestConfirmPendingPrice_PassesPriceThrough(t *testing.T) {
	service := &fakeImportsService{}
	handler := NewImportsHandler(service)

	rec := confirmPriceRequest(t, handler, `{"sell_price": 19.5}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if service.confirmedPrice != 19.5 {
		t.Fatalf("confirmed price = %v, want 19.5", service.confirmedPrice)
	}
}

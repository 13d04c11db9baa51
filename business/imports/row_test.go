package imports

import (
	"strings"
	"testing"
)

func testColumnMap() ColumnMap {
	name, cost, sell, stock := 0, 1, 2, 3
	return ColumnMap{
		Name:      &name,
		CostPrice: &cost,
		SellPrice: &sell,
		Stock:     &stock,
	}
}

func TestClassifyRow_BlankRowIsSkipped(t *testing.T) {
	out := classifyRow([]string{"", "  ", ""}, testColumnMap())
	if out.kind != rowSkipped {
		t.Fatalf("expected skipped, got kind=%d", out.kind)
	}
}

func TestClassifyRow_Failures(t *testing.T) {
	cases := []struct {
		label  string
		row    []string
		reason string
	}{
		{"empty name", []string{"", "10", "15", "5"}, "product name is empty"},
		{"empty cost", []string{"Rice", "", "15", "5"}, "Rice - cost price is empty"},
		{"bad cost", []string{"Rice", "abc", "15", "5"}, "Rice - cost price must be numeric, got: abc"},
		{"bad stock", []string{"Rice", "10", "15", "lots"}, "Rice - stock must be a non-zero number, got: lots"},
		{"zero stock", []string{"Rice", "10", "15", "0"}, "Rice - stock must be a non-zero number, got: 0"},
		{"bad sell", []string{"Rice", "10", "cheap", "5"}, "Rice - sell price must be numeric, got: cheap"},
	}

	for _, tc := range cases {
		out := classifyRow(tc.row, testColumnMap())
		if out.kind != rowFailed {
			t.Errorf("%s: expected failure, got kind=%d", tc.label, out.kind)
			continue
		}
		if out.reason != tc.reason {
			t.Errorf("%s: reason = %q, want %q", tc.label, out.reason, tc.reason)
		}
		if out.summary == "" {
			t.Errorf("%s: expected a row summary", tc.label)
		}
	}
}

func TestClassifyRow_DecimalStockIsTruncated(t *testing.T) {
	out := classifyRow([]string{"Rice", "10", "15", "7.0"}, testColumnMap())
	if out.kind != rowAccepted {
		t.Fatalf("expected accepted, got kind=%d reason=%q", out.kind, out.reason)
	}
	if out.stock != 7 {
		t.Fatalf("stock = %d, want 7", out.stock)
	}
}

func TestClassifyRow_MissingSellPriceIsPending(t *testing.T) {
	out := classifyRow([]string{"Rice", "10", "", "5"}, testColumnMap())
	if out.kind != rowAccepted {
		t.Fatalf("expected accepted, got kind=%d reason=%q", out.kind, out.reason)
	}
	if !out.pendingPrice {
		t.Fatal("expected row to be pending price")
	}
	if out.sellPrice != nil {
		t.Fatal("expected nil sell price")
	}
}

func TestClassifyRow_CompleteRow(t *testing.T) {
	out := classifyRow([]string{"Rice", "10.5", "15.25", "5"}, testColumnMap())
	if out.kind != rowAccepted {
		t.Fatalf("expected accepted, got kind=%d reason=%q", out.kind, out.reason)
	}
	if out.pendingPrice {
		t.Fatal("row with sell price should not be pending")
	}
	if out.costPrice != 10.5 || out.sellPrice == nil || *out.sellPrice != 15.25 || out.stock != 5 {
		t.Fatalf("unexpected parse: cost=%v sell=%v stock=%d", out.costPrice, out.sellPrice, out.stock)
	}

	product := out.product(7)
	if product.CategoryID != 7 {
		t.Fatalf("category = %d, want default 7", product.CategoryID)
	}
	if !product.IsActive {
		t.Fatal("imported product should be active")
	}
}

func TestClassifyRow_SummaryIsTruncated(t *testing.T) {
	longName := strings.Repeat("x", 600)
	out := classifyRow([]string{longName, "", "15", "5"}, testColumnMap())
	if out.kind != rowFailed {
		t.Fatalf("expected failure, got kind=%d", out.kind)
	}
	if len(out.summary) != maxRowSummaryLen {
		t.Fatalf("summary length = %d, want %d", len(out.summary), maxRowSummaryLen)
	}
}

func TestClassifyRow_UnmappedColumnsReadAsEmpty(t *testing.T) {
	// Every mapped cell reads as empty, but the raw row is not blank, so the
	// row fails on the name check instead of being skipped.
	out := classifyRow([]string{"Rice", "10", "15", "5"}, ColumnMap{})
	if out.kind != rowFailed {
		t.Fatalf("expected failure, got kind=%d", out.kind)
	}
	if out.reason != "product name is empty" {
		t.Fatalf("reason = %q, want empty-name failure", out.reason)
	}
}

package imports

import (
	"errors"
	"testing"

	"wareFlow/domain"
)

func TestParseColumnMap_EmptyStringIsEmptyMapping(t *testing.T) {
	m, err := ParseColumnMap("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name != nil || m.CostPrice != nil || m.Stock != nil {
		t.Fatal("empty input should produce an empty mapping")
	}
}

func TestParseColumnMap_MalformedJSONIsValidationError(t *testing.T) {
	_, err := ParseColumnMap("{not json")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseColumnMap_AcceptsNumbersAndNumericStrings(t *testing.T) {
	m, err := ParseColumnMap(`{"name": 0, "cost_price": "1", "stock": " 3 ", "spec": true}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Name == nil || *m.Name != 0 {
		t.Fatalf("name index = %v, want 0", m.Name)
	}
	if m.CostPrice == nil || *m.CostPrice != 1 {
		t.Fatalf("cost index = %v, want 1", m.CostPrice)
	}
	if m.Stock == nil || *m.Stock != 3 {
		t.Fatalf("stock index = %v, want 3", m.Stock)
	}
	// Non-numeric values are ignored rather than failing the whole mapping.
	if m.Spec != nil {
		t.Fatalf("spec index = %v, want nil", m.Spec)
	}
	if m.SellPrice != nil {
		t.Fatal("absent key should stay nil")
	}
}

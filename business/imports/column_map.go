package imports

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"wareFlow/domain"
)

// ColumnMap associates logical product fields with zero-based spreadsheet
// column indices. A nil index means the field is absent from every row.
type ColumnMap struct {
	Name      *int
	CostPrice *int
	SellPrice *int
	Stock     *int
	Spec      *int
	Barcode   *int
	Remark    *int
}

// ParseColumnMap decodes the user-supplied mapping. An empty string is a valid
// empty mapping; malformed JSON is a validation error rather than being
// silently treated as empty.
func ParseColumnMap(raw string) (ColumnMap, error) {
	if strings.TrimSpace(raw) == "" {
		return ColumnMap{}, nil
	}

	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return ColumnMap{}, fmt.Errorf("%w: malformed column mapping: %v", domain.ErrValidation, err)
	}

	return ColumnMap{
		Name:      columnIndex(fields, "name"),
		CostPrice: columnIndex(fields, "cost_price"),
		SellPrice: columnIndex(fields, "sell_price"),
		Stock:     columnIndex(fields, "stock"),
		Spec:      columnIndex(fields, "spec"),
		Barcode:   columnIndex(fields, "barcode"),
		Remark:    columnIndex(fields, "remark"),
	}, nil
}

// columnIndex accepts both JSON numbers and numeric strings for an index.
func columnIndex(fields map[string]interface{}, key string) *int {
	val, ok := fields[key]
	if !ok {
		return nil
	}

	switch v := val.(type) {
	case float64:
		idx := int(v)
		return &idx
	case string:
		idx, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil
		}
		return &idx
	default:
		return nil
	}
}

package imports

import (
	"fmt"
	"strconv"
	"strings"

	"wareFlow/domain"
)

const maxRowSummaryLen = 500

type rowKind int

const (
	rowSkipped rowKind = iota
	rowFailed
	rowAccepted
)

// rowOutcome is the classification of one data row. A row lands in exactly one
// bucket: skipped (all cells blank), failed (summary + reason), or accepted
// (product fields, possibly pending a sell price).
type rowOutcome struct {
	kind    rowKind
	summary string
	reason  string

	name         string
	costPrice    float64
	sellPrice    *float64
	stock        int
	spec         string
	barcode      string
	remark       string
	pendingPrice bool
}

// classifyRow applies the per-row validation order: blank row, name, cost
// price, stock, sell price. First failure wins.
func classifyRow(row []string, m ColumnMap) rowOutcome {
	if blankRow(row) {
		return rowOutcome{kind: rowSkipped}
	}

	name := cell(row, m.Name)
	costRaw := cell(row, m.CostPrice)
	sellRaw := cell(row, m.SellPrice)
	stockRaw := cell(row, m.Stock)

	summary := truncate(fmt.Sprintf("name:%s cost:%s qty:%s", name, costRaw, stockRaw), maxRowSummaryLen)

	if name == "" {
		return rowOutcome{kind: rowFailed, summary: summary, reason: "product name is empty"}
	}

	if costRaw == "" {
		return rowOutcome{kind: rowFailed, summary: summary, reason: fmt.Sprintf("%s - cost price is empty", name)}
	}

	costPrice, err := strconv.ParseFloat(costRaw, 64)
	if err != nil {
		return rowOutcome{kind: rowFailed, summary: summary,
			reason: fmt.Sprintf("%s - cost price must be numeric, got: %s", name, costRaw)}
	}

	// Stock accepts decimal-looking input ("7.0" imports as 7) but rejects
	// non-numbers and zero.
	stockFloat, err := strconv.ParseFloat(stockRaw, 64)
	if err != nil || int(stockFloat) == 0 {
		return rowOutcome{kind: rowFailed, summary: summary,
			reason: fmt.Sprintf("%s - stock must be a non-zero number, got: %s", name, stockRaw)}
	}
	stock := int(stockFloat)

	var sellPrice *float64
	if sellRaw != "" {
		parsed, err := strconv.ParseFloat(sellRaw, 64)
		if err != nil {
			return rowOutcome{kind: rowFailed, summary: summary,
				reason: fmt.Sprintf("%s - sell price must be numeric, got: %s", name, sellRaw)}
		}
		sellPrice = &parsed
	}

	return rowOutcome{
		kind:         rowAccepted,
		name:         name,
		costPrice:    costPrice,
		sellPrice:    sellPrice,
		stock:        stock,
		spec:         cell(row, m.Spec),
		barcode:      cell(row, m.Barcode),
		remark:       cell(row, m.Remark),
		pendingPrice: sellPrice == nil,
	}
}

func (o rowOutcome) product(categoryID uint) domain.Product {
	product := domain.Product{
		Name:       o.name,
		CategoryID: categoryID,
		Spec:       o.spec,
		Remark:     o.remark,
		Stock:      o.stock,
		IsActive:   true,
	}

	cost := o.costPrice
	product.CostPrice = &cost
	product.SellPrice = o.sellPrice
	if o.barcode != "" {
		barcode := o.barcode
		product.Barcode = &barcode
	}

	return product
}

func cell(row []string, idx *int) string {
	if idx == nil || *idx < 0 || *idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[*idx])
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

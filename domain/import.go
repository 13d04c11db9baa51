package domain

import "time"

// ImportBatch summarizes one spreadsheet import. Total counts data rows that were
// either imported or rejected; blank rows are not counted.
type ImportBatch struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BatchName    string    `gorm:"column:batch_name;size:100" json:"batch_name"`
	Total        int       `gorm:"column:total;default:0" json:"total"`
	Success      int       `gorm:"column:success;default:0" json:"success"`
	Failed       int       `gorm:"column:failed;default:0" json:"failed"`
	PendingPrice int       `gorm:"column:pending_price;default:0" json:"pending_price"`
	CreatedAt    time.Time `json:"created_at"`
}

func (ImportBatch) TableName() string {
	return "import_batches"
}

// ImportFailed records one rejected row: a truncated summary of the raw row plus
// the rejection reason. Append-only.
type ImportFailed struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BatchID   uint      `gorm:"column:batch_id" json:"batch_id"`
	RowData   string    `gorm:"column:row_data;size:500" json:"row_data"`
	Reason    string    `gorm:"column:reason;size:200" json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

func (ImportFailed) TableName() string {
	return "import_failed"
}

// ImportProduct is a product produced by one accepted spreadsheet row, plus
// whether it still needs a sell price confirmed.
type ImportProduct struct {
	Product      Product
	PendingPrice bool
}

// ImportOutcome is everything one import run persists: the batch summary, the
// accepted products, and the rejected rows. It is written in a single
// transaction so a crash mid-import leaves nothing behind.
type ImportOutcome struct {
	Batch      ImportBatch
	Products   []ImportProduct
	FailedRows []ImportFailed
}

// ImportPendingPrice links an imported-but-unpriced product to its batch until a
// human confirms a sell price.
type ImportPendingPrice struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BatchID   uint      `gorm:"column:batch_id" json:"batch_id"`
	ProductID uint      `gorm:"column:product_id" json:"product_id"`
	Confirmed bool      `gorm:"column:confirmed;default:false" json:"confirmed"`
	CreatedAt time.Time `json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (ImportPendingPrice) TableName() string {
	return "import_pending_price"
}

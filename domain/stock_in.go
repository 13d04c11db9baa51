package domain

import "time"

// StockIn is an append-only receiving record. It is never updated or deleted;
// creating one also increments the product's on-hand stock.
type StockIn struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProductID   uint      `gorm:"column:product_id;not null" json:"product_id"`
	Quantity    int       `gorm:"column:quantity;not null" json:"quantity"`
	CostPrice   float64   `gorm:"column:cost_price;type:numeric(10,2)" json:"cost_price"`
	TotalAmount float64   `gorm:"column:total_amount;type:numeric(10,2)" json:"total_amount"`
	AdminID     uint      `gorm:"column:admin_id" json:"admin_id"`
	Remark      string    `gorm:"column:remark;type:text" json:"remark"`
	CreatedAt   time.Time `json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (StockIn) TableName() string {
	return "stock_in"
}

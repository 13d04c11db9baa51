package domain

import "time"

type Product struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Barcode    *string   `gorm:"column:barcode;size:50;unique" json:"barcode"`
	Name       string    `gorm:"column:name;size:100;not null" json:"name"`
	CategoryID uint      `gorm:"column:category_id" json:"category_id"`
	Spec       string    `gorm:"column:spec;size:100" json:"spec"`
	Unit       string    `gorm:"column:unit;size:20" json:"unit"`
	CostPrice  *float64  `gorm:"column:cost_price;type:numeric(10,2)" json:"cost_price"`
	SellPrice  *float64  `gorm:"column:sell_price;type:numeric(10,2)" json:"sell_price"`
	Stock      int       `gorm:"column:stock;default:0" json:"stock"`
	Image      string    `gorm:"column:image;size:255" json:"image"`
	Remark     string    `gorm:"column:remark;type:text" json:"remark"`
	IsActive   bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

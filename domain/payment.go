package domain

import "time"

type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OrderID       uint      `gorm:"column:order_id;not null" json:"order_id"`
	Amount        float64   `gorm:"column:amount;type:numeric(10,2)" json:"amount"`
	PaymentMethod string    `gorm:"column:payment_method;size:50" json:"payment_method"`
	PaymentDate   time.Time `gorm:"column:payment_date" json:"payment_date"`
	AdminID       uint      `gorm:"column:admin_id" json:"admin_id"`
	Remark        string    `gorm:"column:remark;type:text" json:"remark"`
	CreatedAt     time.Time `json:"created_at"`

	Order *Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

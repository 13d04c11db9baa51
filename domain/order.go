package domain

import "time"

// Order status lifecycle. Transitions are linear and forward-only; see
// business/orders for the transition table.
const (
	OrderStatusPending   = 1 // awaiting confirmation
	OrderStatusConfirmed = 2 // confirmed, awaiting picking
	OrderStatusPicked    = 3 // picked, awaiting shipment
	OrderStatusShipped   = 4 // shipped, awaiting payment
	OrderStatusCompleted = 5 // paid, complete
)

var orderStatusLabels = map[int]string{
	OrderStatusPending:   "pending confirmation",
	OrderStatusConfirmed: "confirmed",
	OrderStatusPicked:    "picked",
	OrderStatusShipped:   "shipped",
	OrderStatusCompleted: "completed",
}

// OrderStatusLabel returns the human label for a status, or "unknown".
func OrderStatusLabel(status int) string {
	if label, ok := orderStatusLabels[status]; ok {
		return label
	}
	return "unknown"
}

type Order struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	OrderNo          string    `gorm:"column:order_no;size:50;unique;not null" json:"order_no"`
	CustomerID       uint      `gorm:"column:supermarket_id;not null" json:"customer_id"`
	Status           int       `gorm:"column:status;default:1" json:"status"`
	TotalAmount      float64   `gorm:"column:total_amount;type:numeric(10,2)" json:"total_amount"`
	TrackingNumber   string    `gorm:"column:tracking_number;size:100" json:"tracking_number"`
	LogisticsCompany string    `gorm:"column:logistics_company;size:100" json:"logistics_company"`
	Remark           string    `gorm:"column:remark;type:text" json:"remark"`
	CreatedAt        time.Time `json:"created_at"`

	Customer *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Logs     []OrderLog  `gorm:"foreignKey:OrderID" json:"logs,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem snapshots quantity and unit price at order creation; later product
// price changes do not affect it.
type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	OrderID    uint    `gorm:"column:order_id;not null" json:"order_id"`
	ProductID  uint    `gorm:"column:product_id;not null" json:"product_id"`
	Quantity   int     `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice  float64 `gorm:"column:unit_price;type:numeric(10,2)" json:"unit_price"`
	TotalPrice float64 `gorm:"column:total_price;type:numeric(10,2)" json:"total_price"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// Operator types recorded on order logs.
const (
	OperatorTypeAdmin    = 1
	OperatorTypeCustomer = 2
)

// OrderLog is the append-only audit trail of an order.
type OrderLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OrderID      uint      `gorm:"column:order_id;not null" json:"order_id"`
	Status       int       `gorm:"column:status" json:"status"`
	OperatorType int       `gorm:"column:operator_type" json:"operator_type"`
	OperatorID   uint      `gorm:"column:operator_id" json:"operator_id"`
	OperatorName string    `gorm:"column:operator_name;size:50" json:"operator_name"`
	Remark       string    `gorm:"column:remark;type:text" json:"remark"`
	CreatedAt    time.Time `json:"created_at"`
}

func (OrderLog) TableName() string {
	return "order_logs"
}

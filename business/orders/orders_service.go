package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wareFlow/domain"
	"wareFlow/pkg/logger"
	"wareFlow/pkg/metrics"

	"github.com/google/uuid"
)

// OrdersRepository contract interface
type OrdersRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id uint) (domain.Order, error)
	FindAll(ctx context.Context, status int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, order *domain.Order, log domain.OrderLog, decrementStock bool) error
	CountByStatus(ctx context.Context, status int) (int64, error)
}

// ProductStatsRepository is the slice of the product repository the overview
// stats need.
type ProductStatsRepository interface {
	CountActive(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context, threshold int) (int64, error)
}

type CustomerStatsRepository interface {
	Count(ctx context.Context) (int64, error)
}

const (
	orderNoPrefix     = "ORD"
	orderNoTimeLayout = "20060102150405"
	lowStockThreshold = 10
	timeLayout        = "2006-01-02 15:04:05"
)

// statusPredecessor maps each reachable status to the only status it may be
// entered from. The lifecycle is strictly linear: 1 -> 2 -> 3 -> 4 -> 5.
var statusPredecessor = map[int]int{
	domain.OrderStatusConfirmed: domain.OrderStatusPending,
	domain.OrderStatusPicked:    domain.OrderStatusConfirmed,
	domain.OrderStatusShipped:   domain.OrderStatusPicked,
	domain.OrderStatusCompleted: domain.OrderStatusShipped,
}

type ItemInput struct {
	ProductID uint
	Quantity  int
	UnitPrice float64
}

type StatusUpdateInput struct {
	Status           int
	Remark           string
	TrackingNumber   string
	LogisticsCompany string
	OperatorType     int
	OperatorName     string
}

type OrderSummary struct {
	ID               uint    `json:"id"`
	OrderNo          string  `json:"order_no"`
	CustomerName     string  `json:"customer_name"`
	Status           int     `json:"status"`
	StatusText       string  `json:"status_text"`
	TotalAmount      float64 `json:"total_amount"`
	TrackingNumber   string  `json:"tracking_number"`
	LogisticsCompany string  `json:"logistics_company"`
	Remark           string  `json:"remark"`
	CreatedAt        string  `json:"created_at"`
}

type ItemView struct {
	ID          uint    `json:"id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

type LogView struct {
	StatusText   string `json:"status_text"`
	OperatorName string `json:"operator_name"`
	Remark       string `json:"remark"`
	CreatedAt    string `json:"created_at"`
}

type OrderDetail struct {
	OrderSummary
	Items []ItemView `json:"items"`
	Logs  []LogView  `json:"logs"`
}

type Stats struct {
	Products      int64 `json:"products"`
	Customers     int64 `json:"supermarkets"`
	PendingOrders int64 `json:"pending_orders"`
	LowStock      int64 `json:"low_stock"`
}

type ordersService struct {
	ordersRepo   OrdersRepository
	productRepo  ProductStatsRepository
	customerRepo CustomerStatsRepository
}

func NewOrdersService(ordersRepo OrdersRepository, productRepo ProductStatsRepository, customerRepo CustomerStatsRepository) *ordersService {
	return &ordersService{
		ordersRepo:   ordersRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// generateOrderNo builds a human-readable order number from the creation
// timestamp plus a short random suffix, so two orders created within the same
// second cannot collide.
func generateOrderNo(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:4]
	return orderNoPrefix + now.Format(orderNoTimeLayout) + suffix
}

// Create snapshots item quantities and unit prices, sums the total, and
// persists order, items and the initial log entry as one atomic unit.
func (s *ordersService) Create(ctx context.Context, customerID uint, items []ItemInput, remark string) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("context error: %w", err)
	}

	if len(items) == 0 {
		logger.Error("Order has no items")
		return domain.Order{}, fmt.Errorf("%w: order needs at least one item", domain.ErrValidation)
	}

	var total float64
	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		lineTotal := float64(item.Quantity) * item.UnitPrice
		total += lineTotal
		orderItems = append(orderItems, domain.OrderItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: lineTotal,
		})
	}

	order := domain.Order{
		OrderNo:     generateOrderNo(time.Now()),
		CustomerID:  customerID,
		Status:      domain.OrderStatusPending,
		TotalAmount: total,
		Remark:      remark,
		Items:       orderItems,
		Logs: []domain.OrderLog{{
			Status:       domain.OrderStatusPending,
			OperatorType: domain.OperatorTypeAdmin,
			OperatorName: "admin",
			Remark:       "create order",
		}},
	}

	if err := s.ordersRepo.Create(ctx, &order); err != nil {
		logger.Error("Failed to create order", err)
		return domain.Order{}, err
	}

	metrics.OrdersCreated.Inc()
	logger.Info("Order created", "order_no", order.OrderNo, "total", order.TotalAmount)

	return order, nil
}

// UpdateStatus advances the order along the lifecycle. The transition table is
// strict: a status is only reachable from its direct predecessor, which also
// makes the stock decrement on entering "shipped" happen at most once per
// order.
func (s *ordersService) UpdateStatus(ctx context.Context, orderID uint, input StatusUpdateInput) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	order, err := s.ordersRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		logger.Error("Failed to load order for status update", err)
		return err
	}

	predecessor, ok := statusPredecessor[input.Status]
	if !ok || order.Status != predecessor {
		logger.Warn("Rejected order status transition",
			"order_no", order.OrderNo, "from", order.Status, "to", input.Status)
		return fmt.Errorf("%w: %d -> %d", domain.ErrInvalidTransition, order.Status, input.Status)
	}

	decrementStock := input.Status == domain.OrderStatusShipped

	order.Status = input.Status
	order.TrackingNumber = input.TrackingNumber
	order.LogisticsCompany = input.LogisticsCompany

	log := domain.OrderLog{
		OrderID:      order.ID,
		Status:       input.Status,
		OperatorType: input.OperatorType,
		OperatorName: input.OperatorName,
		Remark:       input.Remark,
	}

	if err := s.ordersRepo.UpdateStatus(ctx, &order, log, decrementStock); err != nil {
		logger.Error("Failed to update order status", err)
		return err
	}

	logger.Info("Order status updated",
		"order_no", order.OrderNo, "status", input.Status, "stock_applied", decrementStock)

	return nil
}

func (s *ordersService) Get(ctx context.Context, orderID uint) (OrderDetail, error) {
	order, err := s.ordersRepo.FindByID(ctx, orderID)
	if err != nil {
		return OrderDetail{}, err
	}

	detail := OrderDetail{
		OrderSummary: toSummary(order),
		Items:        make([]ItemView, 0, len(order.Items)),
		Logs:         make([]LogView, 0, len(order.Logs)),
	}

	for _, item := range order.Items {
		view := ItemView{
			ID:         item.ID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		}
		if item.Product != nil {
			view.ProductName = item.Product.Name
		}
		detail.Items = append(detail.Items, view)
	}

	for _, log := range order.Logs {
		detail.Logs = append(detail.Logs, LogView{
			StatusText:   domain.OrderStatusLabel(log.Status),
			OperatorName: log.OperatorName,
			Remark:       log.Remark,
			CreatedAt:    log.CreatedAt.Format(timeLayout),
		})
	}

	return detail, nil
}

func (s *ordersService) List(ctx context.Context, status int) ([]OrderSummary, error) {
	orders, err := s.ordersRepo.FindAll(ctx, status)
	if err != nil {
		logger.Error("Failed to list orders", err)
		return nil, err
	}

	summaries := make([]OrderSummary, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, toSummary(order))
	}

	return summaries, nil
}

// Stats is the dashboard overview: active products, customer count, orders
// awaiting confirmation, and products running low.
func (s *ordersService) Stats(ctx context.Context) (Stats, error) {
	products, err := s.productRepo.CountActive(ctx)
	if err != nil {
		return Stats{}, err
	}

	customers, err := s.customerRepo.Count(ctx)
	if err != nil {
		return Stats{}, err
	}

	pending, err := s.ordersRepo.CountByStatus(ctx, domain.OrderStatusPending)
	if err != nil {
		return Stats{}, err
	}

	lowStock, err := s.productRepo.CountLowStock(ctx, lowStockThreshold)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		Products:      products,
		Customers:     customers,
		PendingOrders: pending,
		LowStock:      lowStock,
	}, nil
}

func toSummary(order domain.Order) OrderSummary {
	summary := OrderSummary{
		ID:               order.ID,
		OrderNo:          order.OrderNo,
		Status:           order.Status,
		StatusText:       domain.OrderStatusLabel(order.Status),
		TotalAmount:      order.TotalAmount,
		TrackingNumber:   order.TrackingNumber,
		LogisticsCompany: order.LogisticsCompany,
		Remark:           order.Remark,
		CreatedAt:        order.CreatedAt.Format(timeLayout),
	}
	if order.Customer != nil {
		summary.CustomerName = order.Customer.Name
	}

	return summary
}

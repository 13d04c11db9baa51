package payments

import (
	"context"
	"fmt"
	"time"

	"wareFlow/domain"
	"wareFlow/pkg/logger"
)

// PaymentsRepository contract interface
type PaymentsRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	FindAll(ctx context.Context) ([]domain.Payment, error)
}

// OrdersRepository is the slice of the orders repository payments need.
type OrdersRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Order, error)
}

type CreateInput struct {
	OrderID       uint
	Amount        float64
	PaymentMethod string
	AdminID       uint
	Remark        string
}

type PaymentView struct {
	ID            uint    `json:"id"`
	OrderID       uint    `json:"order_id"`
	OrderNo       string  `json:"order_no"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	PaymentDate   string  `json:"payment_date"`
	Remark        string  `json:"remark"`
}

const timeLayout = "2006-01-02 15:04:05"

type paymentsService struct {
	paymentsRepo PaymentsRepository
	ordersRepo   OrdersRepository
}

func NewPaymentsService(paymentsRepo PaymentsRepository, ordersRepo OrdersRepository) *paymentsService {
	return &paymentsService{
		paymentsRepo: paymentsRepo,
		ordersRepo:   ordersRepo,
	}
}

// Create records a payment against an existing order.
func (s *paymentsService) Create(ctx context.Context, input CreateInput) (domain.Payment, error) {
	if err := ctx.Err(); err != nil {
		return domain.Payment{}, fmt.Errorf("context error: %w", err)
	}

	if _, err := s.ordersRepo.FindByID(ctx, input.OrderID); err != nil {
		return domain.Payment{}, err
	}

	payment := domain.Payment{
		OrderID:       input.OrderID,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		PaymentDate:   time.Now(),
		AdminID:       input.AdminID,
		Remark:        input.Remark,
	}

	if err := s.paymentsRepo.Create(ctx, &payment); err != nil {
		logger.Error("Failed to create payment", err)
		return domain.Payment{}, err
	}

	logger.Info("Payment recorded", "order_id", input.OrderID, "amount", input.Amount)

	return payment, nil
}

func (s *paymentsService) List(ctx context.Context) ([]PaymentView, error) {
	payments, err := s.paymentsRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to list payments", err)
		return nil, err
	}

	views := make([]PaymentView, 0, len(payments))
	for _, payment := range payments {
		view := PaymentView{
			ID:            payment.ID,
			OrderID:       payment.OrderID,
			Amount:        payment.Amount,
			PaymentMethod: payment.PaymentMethod,
			PaymentDate:   payment.PaymentDate.Format(timeLayout),
			Remark:        payment.Remark,
		}
		if payment.Order != nil {
			view.OrderNo = payment.Order.OrderNo
		}
		views = append(views, view)
	}

	return views, nil
}

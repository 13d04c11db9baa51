package rest

import (
	"context"
	"net/http"
	"time"

	"wareFlow/business/payments"
	"wareFlow/domain"
	"wareFlow/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type PaymentsService interface {
	Create(ctx context.Context, input payments.CreateInput) (domain.Payment, error)
	List(ctx context.Context) ([]payments.PaymentView, error)
}

type PaymentsHandler struct {
	paymentsService PaymentsService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewPaymentsHandler(paymentsService PaymentsService) *PaymentsHandler {
	return &PaymentsHandler{
		paymentsService: paymentsService,
		validator:       validator.New(),
		timeout:         10 * time.Second,
	}
}

type CreatePaymentRequest struct {
	OrderID       uint    `json:"order_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
	Remark        string  `json:"remark"`
}

func (h *PaymentsHandler) GetPayments(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	views, err := h.paymentsService.List(ctx)
	if err != nil {
		logger.Error("Failed to list payments", err)
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(views))
}

func (h *PaymentsHandler) CreatePayment(c echo.Context) error {
	var req CreatePaymentRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate payment create", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	adminID, _ := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	payment, err := h.paymentsService.Create(ctx, payments.CreateInput{
		OrderID:       req.OrderID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		AdminID:       adminID,
		Remark:        req.Remark,
	})
	if err != nil {
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":    "Payment recorded successfully",
		"payment_id": payment.ID,
	})
}

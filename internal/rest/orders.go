package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"wareFlow/business/auth"
	"wareFlow/business/orders"
	"wareFlow/domain"
	"wareFlow/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type OrdersService interface {
	Create(ctx context.Context, customerID uint, items []orders.ItemInput, remark string) (domain.Order, error)
	UpdateStatus(ctx context.Context, orderID uint, input orders.StatusUpdateInput) error
	Get(ctx context.Context, orderID uint) (orders.OrderDetail, error)
	List(ctx context.Context, status int) ([]orders.OrderSummary, error)
	Stats(ctx context.Context) (orders.Stats, error)
}

type OrdersHandler struct {
	ordersService OrdersService
	validator     *validator.Validate
	timeout       time.Duration
}

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		ordersService: ordersService,
		validator:     validator.New(),
		timeout:       10 * time.Second,
	}
}

type OrderItemRequest struct {
	ProductID uint    `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

type CreateOrderRequest struct {
	CustomerID uint               `json:"customer_id" validate:"required"`
	Items      []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Remark     string             `json:"remark"`
}

type UpdateOrderStatusRequest struct {
	Status           int    `json:"status" validate:"required,min=2,max=5"`
	Remark           string `json:"remark"`
	TrackingNumber   string `json:"tracking_number"`
	LogisticsCompany string `json:"logistics_company"`
}

func (h *OrdersHandler) GetOrders(c echo.Context) error {
	var status int
	if raw := c.QueryParam("status"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid status filter"})
		}
		status = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	summaries, err := h.ordersService.List(ctx, status)
	if err != nil {
		logger.Error("Failed to list orders", err)
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(summaries))
}

func (h *OrdersHandler) GetOrder(c echo.Context) error {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	detail, err := h.ordersService.Get(ctx, uint(orderID))
	if err != nil {
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(detail))
}

func (h *OrdersHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate order create", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	items := make([]orders.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, orders.ItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.Create(ctx, req.CustomerID, items, req.Remark)
	if err != nil {
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "Order created successfully",
		"order_id": order.ID,
		"order_no": order.OrderNo,
	})
}

func (h *OrdersHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order id"})
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate status update", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	operatorType := domain.OperatorTypeAdmin
	operatorName := auth.RoleAdmin
	if role, _ := c.Get("role").(string); role == auth.RoleCustomer {
		operatorType = domain.OperatorTypeCustomer
		operatorName = auth.RoleCustomer
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err = h.ordersService.UpdateStatus(ctx, uint(orderID), orders.StatusUpdateInput{
		Status:           req.Status,
		Remark:           req.Remark,
		TrackingNumber:   req.TrackingNumber,
		LogisticsCompany: req.LogisticsCompany,
		OperatorType:     operatorType,
		OperatorName:     operatorName,
	})
	if err != nil {
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Order status updated successfully",
	})
}

func (h *OrdersHandler) GetStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stats, err := h.ordersService.Stats(ctx)
	if err != nil {
		logger.Error("Failed to load overview stats", err)
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stats))
}

package rest

import (
	"context"
	"net/http"
	"time"

	"wareFlow/business/stock"
	"wareFlow/domain"
	"wareFlow/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type StockService interface {
	RecordStockIn(ctx context.Context, input stock.RecordInput) (domain.StockIn, int, error)
	List(ctx context.Context) ([]stock.RecordView, error)
}

type StockHandler struct {
	stockService StockService
	validator    *validator.Validate
	timeout      time.Duration
}

func NewStockHandler(stockService StockService) *StockHandler {
	return &StockHandler{
		stockService: stockService,
		validator:    validator.New(),
		timeout:      10 * time.Second,
	}
}

type StockInRequest struct {
	ProductID uint    `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	CostPrice float64 `json:"cost_price" validate:"gte=0"`
	Remark    string  `json:"remark"`
}

func (h *StockHandler) GetStockIns(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	records, err := h.stockService.List(ctx)
	if err != nil {
		logger.Error("Failed to list stock-in records", err)
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(records))
}

func (h *StockHandler) CreateStockIn(c echo.Context) error {
	var req StockInRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate stock-in request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	adminID, _ := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	record, newStock, err := h.stockService.RecordStockIn(ctx, stock.RecordInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		CostPrice: req.CostPrice,
		AdminID:   adminID,
		Remark:    req.Remark,
	})
	if err != nil {
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":   "Stock-in recorded successfully",
		"record_id": record.ID,
		"new_stock": newStock,
	})
}

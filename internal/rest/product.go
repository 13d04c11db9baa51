package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"wareFlow/business/catalog"
	"wareFlow/domain"
	"wareFlow/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CatalogService interface {
	CreateProduct(ctx context.Context, product *domain.Product) (domain.Product, error)
	GetProduct(ctx context.Context, id uint) (domain.Product, error)
	ListProducts(ctx context.Context, keyword string, categoryID uint) ([]catalog.ProductView, error)
	UpdateProduct(ctx context.Context, id uint, input catalog.UpdateInput) error
	DeleteProduct(ctx context.Context, id uint) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type ProductHandler struct {
	catalogService CatalogService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewProductHandler(catalogService CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type CreateProductRequest struct {
	Barcode    *string  `json:"barcode"`
	Name       string   `json:"name" validate:"required"`
	CategoryID uint     `json:"category_id"`
	Spec       string   `json:"spec"`
	Unit       string   `json:"unit"`
	CostPrice  *float64 `json:"cost_price"`
	SellPrice  *float64 `json:"sell_price"`
	Stock      int      `json:"stock"`
	Remark     string   `json:"remark"`
}

// UpdateProductRequest is a partial update: absent fields stay untouched.
type UpdateProductRequest struct {
	Barcode    *string  `json:"barcode"`
	Name       *string  `json:"name"`
	CategoryID *uint    `json:"category_id"`
	Spec       *string  `json:"spec"`
	Unit       *string  `json:"unit"`
	CostPrice  *float64 `json:"cost_price"`
	SellPrice  *float64 `json:"sell_price"`
	Stock      *int     `json:"stock"`
	Remark     *string  `json:"remark"`
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	keyword := c.QueryParam("keyword")

	var categoryID uint
	if raw := c.QueryParam("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid category id"})
		}
		categoryID = uint(parsed)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.catalogService.ListProducts(ctx, keyword, categoryID)
	if err != nil {
		logger.Error("Failed to list products", err)
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product create", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.catalogService.CreateProduct(ctx, &domain.Product{
		Barcode:    req.Barcode,
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Spec:       req.Spec,
		Unit:       req.Unit,
		CostPrice:  req.CostPrice,
		SellPrice:  req.SellPrice,
		Stock:      req.Stock,
		Remark:     req.Remark,
	})
	if err != nil {
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(product))
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err = h.catalogService.UpdateProduct(ctx, uint(productID), catalog.UpdateInput{
		Barcode:    req.Barcode,
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Spec:       req.Spec,
		Unit:       req.Unit,
		CostPrice:  req.CostPrice,
		SellPrice:  req.SellPrice,
		Stock:      req.Stock,
		Remark:     req.Remark,
	})
	if err != nil {
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Product updated successfully",
	})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.catalogService.DeleteProduct(ctx, uint(productID)); err != nil {
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Product deleted successfully",
	})
}

func (h *ProductHandler) GetCategories(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	categories, err := h.catalogService.ListCategories(ctx)
	if err != nil {
		logger.Error("Failed to list categories", err)
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(categories))
}

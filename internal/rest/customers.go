package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"wareFlow/business/customers"
	"wareFlow/domain"
	"wareFlow/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CustomersService interface {
	List(ctx context.Context) ([]customers.CustomerView, error)
	Create(ctx context.Context, input customers.CreateInput) (domain.Customer, error)
	Update(ctx context.Context, id uint, input customers.UpdateInput) error
	ResetPassword(ctx context.Context, id uint) error
}

type CustomersHandler struct {
	customersService CustomersService
	validator        *validator.Validate
	timeout          time.Duration
}

func NewCustomersHandler(customersService CustomersService) *CustomersHandler {
	return &CustomersHandler{
		customersService: customersService,
		validator:        validator.New(),
		timeout:          10 * time.Second,
	}
}

type CreateCustomerRequest struct {
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Username      string `json:"username" validate:"required"`
	Password      string `json:"password" validate:"required,min=6"`
}

// UpdateCustomerRequest updates the profile; an omitted is_active keeps the
// account's current state.
type UpdateCustomerRequest struct {
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	IsActive      *bool  `json:"is_active"`
}

func (h *CustomersHandler) GetCustomers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	views, err := h.customersService.List(ctx)
	if err != nil {
		logger.Error("Failed to list customers", err)
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(views))
}

func (h *CustomersHandler) CreateCustomer(c echo.Context) error {
	var req CreateCustomerRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate customer create", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	customer, err := h.customersService.Create(ctx, customers.CreateInput{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Address:       req.Address,
		Username:      req.Username,
		Password:      req.Password,
	})
	if err != nil {
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":     "Customer created successfully",
		"customer_id": customer.ID,
	})
}

func (h *CustomersHandler) UpdateCustomer(c echo.Context) error {
	customerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid customer id"})
	}

	var req UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate customer update", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err = h.customersService.Update(ctx, uint(customerID), customers.UpdateInput{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Address:       req.Address,
		IsActive:      req.IsActive,
	})
	if err != nil {
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Customer updated successfully",
	})
}

func (h *CustomersHandler) ResetPassword(c echo.Context) error {
	customerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid customer id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.customersService.ResetPassword(ctx, uint(customerID)); err != nil {
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Password reset to default",
	})
}

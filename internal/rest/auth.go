package rest

import (
	"context"
	"net/http"
	"time"

	"wareFlow/business/auth"
	"wareFlow/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type AuthService interface {
	AdminLogin(ctx context.Context, username, password string) (auth.LoginResult, error)
	CustomerLogin(ctx context.Context, username, password string) (auth.LoginResult, error)
}

type AuthHandler struct {
	authService AuthService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) AdminLogin(c echo.Context) error {
	return h.login(c, h.authService.AdminLogin)
}

func (h *AuthHandler) CustomerLogin(c echo.Context) error {
	return h.login(c, h.authService.CustomerLogin)
}

func (h *AuthHandler) login(c echo.Context, loginFn func(context.Context, string, string) (auth.LoginResult, error)) error {
	var req LoginRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate login request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := loginFn(ctx, req.Username, req.Password)
	if err != nil {
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}

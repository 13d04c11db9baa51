package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"wareFlow/domain"
	"wareFlow/pkg/logger"
	"wareFlow/pkg/utils"
)

// AdminRepository contract interface
type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (domain.Admin, error)
}

// CustomerRepository is the slice of the customer repository login needs.
type CustomerRepository interface {
	FindByUsername(ctx context.Context, username string) (domain.Customer, error)
}

const (
	RoleAdmin    = "admin"
	RoleCustomer = "supermarket"
)

type LoginResult struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type authService struct {
	adminRepo    AdminRepository
	customerRepo CustomerRepository
	jwtManager   *utils.JWTManager
}

func NewAuthService(adminRepo AdminRepository, customerRepo CustomerRepository, jwtManager *utils.JWTManager) *authService {
	return &authService{
		adminRepo:    adminRepo,
		customerRepo: customerRepo,
		jwtManager:   jwtManager,
	}
}

func (s *authService) AdminLogin(ctx context.Context, username, password string) (LoginResult, error) {
	if err := ctx.Err(); err != nil {
		return LoginResult{}, fmt.Errorf("context error: %w", err)
	}

	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Warn("Admin login failed: unknown username", "username", username)
			return LoginResult{}, domain.ErrUnauthorized
		}
		return LoginResult{}, err
	}

	if !utils.CheckPassword(password, admin.Password) {
		logger.Warn("Admin login failed: wrong password", "username", username)
		return LoginResult{}, domain.ErrUnauthorized
	}

	token, err := s.jwtManager.Generate(strconv.FormatUint(uint64(admin.ID), 10), RoleAdmin)
	if err != nil {
		logger.Error("Failed to generate admin token", err)
		return LoginResult{}, errors.New("failed to generate token")
	}

	logger.Info("Admin logged in", "username", username)

	return LoginResult{Token: token, Name: admin.Name, Role: RoleAdmin}, nil
}

// CustomerLogin verifies credentials and additionally rejects disabled
// accounts with a Forbidden error.
func (s *authService) CustomerLogin(ctx context.Context, username, password string) (LoginResult, error) {
	if err := ctx.Err(); err != nil {
		return LoginResult{}, fmt.Errorf("context error: %w", err)
	}

	customer, err := s.customerRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Warn("Customer login failed: unknown username", "username", username)
			return LoginResult{}, domain.ErrUnauthorized
		}
		return LoginResult{}, err
	}

	if !utils.CheckPassword(password, customer.Password) {
		logger.Warn("Customer login failed: wrong password", "username", username)
		return LoginResult{}, domain.ErrUnauthorized
	}

	if !customer.IsActive {
		logger.Warn("Customer login rejected: account disabled", "username", username)
		return LoginResult{}, domain.ErrForbidden
	}

	token, err := s.jwtManager.Generate(strconv.FormatUint(uint64(customer.ID), 10), RoleCustomer)
	if err != nil {
		logger.Error("Failed to generate customer token", err)
		return LoginResult{}, errors.New("failed to generate token")
	}

	logger.Info("Customer logged in", "username", username)

	return LoginResult{Token: token, Name: customer.Name, Role: RoleCustomer}, nil
}

package customers

import (
	"context"
	"errors"
	"fmt"

	"wareFlow/domain"
	"wareFlow/pkg/logger"
	"wareFlow/pkg/utils"
)

// CustomerRepository contract interface
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	FindByID(ctx context.Context, id uint) (domain.Customer, error)
	FindByUsername(ctx context.Context, username string) (domain.Customer, error)
	FindAll(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
}

type CreateInput struct {
	Name          string
	ContactPerson string
	Phone         string
	Address       string
	Username      string
	Password      string
}

// UpdateInput carries a customer profile update. A nil IsActive leaves the
// stored flag untouched, so a routine edit cannot disable the account.
type UpdateInput struct {
	Name          string
	ContactPerson string
	Phone         string
	Address       string
	IsActive      *bool
}

type CustomerView struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Username      string `json:"username"`
	IsActive      bool   `json:"is_active"`
	CreatedAt     string `json:"created_at"`
}

const dateLayout = "2006-01-02"

type customersService struct {
	customerRepo    CustomerRepository
	defaultPassword string
}

func NewCustomersService(customerRepo CustomerRepository, defaultPassword string) *customersService {
	return &customersService{
		customerRepo:    customerRepo,
		defaultPassword: defaultPassword,
	}
}

func (s *customersService) List(ctx context.Context) ([]CustomerView, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to list customers", err)
		return nil, err
	}

	views := make([]CustomerView, 0, len(customers))
	for _, customer := range customers {
		views = append(views, CustomerView{
			ID:            customer.ID,
			Name:          customer.Name,
			ContactPerson: customer.ContactPerson,
			Phone:         customer.Phone,
			Address:       customer.Address,
			Username:      customer.Username,
			IsActive:      customer.IsActive,
			CreatedAt:     customer.CreatedAt.Format(dateLayout),
		})
	}

	return views, nil
}

// Create rejects duplicate usernames and always stores the password hashed.
func (s *customersService) Create(ctx context.Context, input CreateInput) (domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Customer{}, fmt.Errorf("context error: %w", err)
	}

	_, err := s.customerRepo.FindByUsername(ctx, input.Username)
	if err == nil {
		logger.Warn("Rejected customer create: username exists", "username", input.Username)
		return domain.Customer{}, fmt.Errorf("%w: username already exists", domain.ErrConflict)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Customer{}, err
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		logger.Error("Failed to hash customer password", err)
		return domain.Customer{}, errors.New("failed to hash password")
	}

	customer := domain.Customer{
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Phone:         input.Phone,
		Address:       input.Address,
		Username:      input.Username,
		Password:      passwordHash,
		IsActive:      true,
	}

	if err := s.customerRepo.Create(ctx, &customer); err != nil {
		logger.Error("Failed to create customer", err)
		return domain.Customer{}, err
	}

	logger.Info("Customer created", "customer_id", customer.ID, "username", customer.Username)

	return customer, nil
}

func (s *customersService) Update(ctx context.Context, id uint, input UpdateInput) error {
	stored, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	isActive := stored.IsActive
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	customer := domain.Customer{
		ID:            id,
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Phone:         input.Phone,
		Address:       input.Address,
		IsActive:      isActive,
	}

	if err := s.customerRepo.Update(ctx, &customer); err != nil {
		logger.Error("Failed to update customer", err)
		return err
	}

	logger.Info("Customer updated", "customer_id", id)

	return nil
}

// ResetPassword sets the account back to the configured default password.
func (s *customersService) ResetPassword(ctx context.Context, id uint) error {
	if _, err := s.customerRepo.FindByID(ctx, id); err != nil {
		return err
	}

	passwordHash, err := utils.HashPassword(s.defaultPassword)
	if err != nil {
		logger.Error("Failed to hash default password", err)
		return errors.New("failed to hash password")
	}

	if err := s.customerRepo.UpdatePassword(ctx, id, passwordHash); err != nil {
		logger.Error("Failed to reset customer password", err)
		return err
	}

	logger.Info("Customer password reset", "customer_id", id)

	return nil
}

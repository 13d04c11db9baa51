package postgres

import (
	"context"
	"errors"
	"fmt"

	"wareFlow/domain"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		DB: db,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uint) (domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Customer{}, fmt.Errorf("context error: %w", err)
	}

	var customer domain.Customer
	err := r.DB.WithContext(ctx).First(&customer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Customer{}, domain.ErrNotFound
		}
		return domain.Customer{}, fmt.Errorf("failed to find customer: %w", err)
	}

	return customer, nil
}

func (r *CustomerRepository) FindByUsername(ctx context.Context, username string) (domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Customer{}, fmt.Errorf("context error: %w", err)
	}

	var customer domain.Customer
	err := r.DB.WithContext(ctx).Where("username = ?", username).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Customer{}, domain.ErrNotFound
		}
		return domain.Customer{}, fmt.Errorf("failed to find customer by username: %w", err)
	}

	return customer, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var customers []domain.Customer
	if err := r.DB.WithContext(ctx).Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to find customers: %w", err)
	}

	return customers, nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"name":           customer.Name,
		"contact_person": customer.ContactPerson,
		"phone":          customer.Phone,
		"address":        customer.Address,
		"is_active":      customer.IsActive,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Customer{}).Where("id = ?", customer.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *CustomerRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.Customer{}).Where("id = ?", id).Update("password", passwordHash)
	if result.Error != nil {
		return fmt.Errorf("failed to update customer password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	if err := r.DB.WithContext(ctx).Model(&domain.Customer{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}

	return count, nil
}

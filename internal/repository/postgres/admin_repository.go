package postgres

import (
	"context"
	"errors"
	"fmt"

	"wareFlow/domain"

	"gorm.io/gorm"
)

type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{
		DB: db,
	}
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (domain.Admin, error) {
	if err := ctx.Err(); err != nil {
		return domain.Admin{}, fmt.Errorf("context error: %w", err)
	}

	var admin domain.Admin
	err := r.DB.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Admin{}, domain.ErrNotFound
		}
		return domain.Admin{}, fmt.Errorf("failed to find admin: %w", err)
	}

	return admin, nil
}

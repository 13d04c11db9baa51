package catalog

import (
	"context"
	"errors"
	"fmt"

	"wareFlow/domain"
	"wareFlow/pkg/logger"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id uint) (domain.Product, error)
	FindByBarcode(ctx context.Context, barcode string) (domain.Product, error)
	FindActive(ctx context.Context, keyword string, categoryID uint) ([]domain.Product, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	SoftDelete(ctx context.Context, id uint) error
}

// CategoryRepository contract interface
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
}

// UpdateInput carries a partial product update: nil fields are left untouched.
type UpdateInput struct {
	Barcode    *string
	Name       *string
	CategoryID *uint
	Spec       *string
	Unit       *string
	CostPrice  *float64
	SellPrice  *float64
	Stock      *int
	Remark     *string
}

type ProductView struct {
	ID           uint     `json:"id"`
	Barcode      *string  `json:"barcode"`
	Name         string   `json:"name"`
	CategoryID   uint     `json:"category_id"`
	CategoryName string   `json:"category_name"`
	Spec         string   `json:"spec"`
	Unit         string   `json:"unit"`
	CostPrice    *float64 `json:"cost_price"`
	SellPrice    *float64 `json:"sell_price"`
	Stock        int      `json:"stock"`
	Remark       string   `json:"remark"`
}

type catalogService struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
}

func NewCatalogService(productRepo ProductRepository, categoryRepo CategoryRepository) *catalogService {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateProduct rejects a duplicate barcode when one is supplied.
func (s *catalogService) CreateProduct(ctx context.Context, product *domain.Product) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	if product.Name == "" {
		return domain.Product{}, fmt.Errorf("%w: product name is required", domain.ErrValidation)
	}

	if product.Barcode != nil && *product.Barcode != "" {
		_, err := s.productRepo.FindByBarcode(ctx, *product.Barcode)
		if err == nil {
			logger.Warn("Rejected product create: barcode exists", "barcode", *product.Barcode)
			return domain.Product{}, fmt.Errorf("%w: barcode already exists", domain.ErrConflict)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return domain.Product{}, err
		}
	}

	product.IsActive = true
	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("Failed to create product", err)
		return domain.Product{}, err
	}

	logger.Info("Product created", "product_id", product.ID, "name", product.Name)

	return *product, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id uint) (domain.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

func (s *catalogService) ListProducts(ctx context.Context, keyword string, categoryID uint) ([]ProductView, error) {
	products, err := s.productRepo.FindActive(ctx, keyword, categoryID)
	if err != nil {
		logger.Error("Failed to list products", err)
		return nil, err
	}

	views := make([]ProductView, 0, len(products))
	for _, product := range products {
		view := ProductView{
			ID:         product.ID,
			Barcode:    product.Barcode,
			Name:       product.Name,
			CategoryID: product.CategoryID,
			Spec:       product.Spec,
			Unit:       product.Unit,
			CostPrice:  product.CostPrice,
			SellPrice:  product.SellPrice,
			Stock:      product.Stock,
			Remark:     product.Remark,
		}
		if product.Category != nil {
			view.CategoryName = product.Category.Name
		}
		views = append(views, view)
	}

	return views, nil
}

// UpdateProduct applies only the fields present in the request.
func (s *catalogService) UpdateProduct(ctx context.Context, id uint, input UpdateInput) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	fields := map[string]interface{}{}
	if input.Barcode != nil {
		fields["barcode"] = *input.Barcode
	}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.CategoryID != nil {
		fields["category_id"] = *input.CategoryID
	}
	if input.Spec != nil {
		fields["spec"] = *input.Spec
	}
	if input.Unit != nil {
		fields["unit"] = *input.Unit
	}
	if input.CostPrice != nil {
		fields["cost_price"] = *input.CostPrice
	}
	if input.SellPrice != nil {
		fields["sell_price"] = *input.SellPrice
	}
	if input.Stock != nil {
		fields["stock"] = *input.Stock
	}
	if input.Remark != nil {
		fields["remark"] = *input.Remark
	}

	if len(fields) == 0 {
		return nil
	}

	if err := s.productRepo.UpdateFields(ctx, id, fields); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("Failed to update product", err)
		}
		return err
	}

	logger.Info("Product updated", "product_id", id)

	return nil
}

// DeleteProduct is a soft delete: the row stays resolvable for historical
// stock-in and order-item joins.
func (s *catalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.productRepo.SoftDelete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("Failed to delete product", err)
		}
		return err
	}

	logger.Info("Product deleted", "product_id", id)

	return nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

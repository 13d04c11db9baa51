package catalog

import (
	"context"
	"errors"
	"testing"

	"wareFlow/domain"
)

type fakeProductRepo struct {
	products    map[uint]domain.Product
	byBarcode   map[string]uint
	nextID      uint
	lastFields  map[string]interface{}
	softDeleted []uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products:  make(map[uint]domain.Product),
		byBarcode: make(map[string]uint),
		nextID:    1,
	}
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) error {
	product.ID = f.nextID
	f.nextID++
	f.products[product.ID] = *product
	if product.Barcode != nil {
		f.byBarcode[*product.Barcode] = product.ID
	}
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uint) (domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return product, nil
}

func (f *fakeProductRepo) FindByBarcode(ctx context.Context, barcode string) (domain.Product, error) {
	id, ok := f.byBarcode[barcode]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return f.products[id], nil
}

func (f *fakeProductRepo) FindActive(ctx context.Context, keyword string, categoryID uint) ([]domain.Product, error) {
	result := make([]domain.Product, 0, len(f.products))
	for _, product := range f.products {
		if product.IsActive {
			result = append(result, product)
		}
	}
	return result, nil
}

func (f *fakeProductRepo) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	if _, ok := f.products[id]; !ok {
		return domain.ErrNotFound
	}
	f.lastFields = fields
	return nil
}

func (f *fakeProductRepo) SoftDelete(ctx context.Context, id uint) error {
	product, ok := f.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	product.IsActive = false
	f.products[id] = product
	f.softDeleted = append(f.softDeleted, id)
	return nil
}

type fakeCategoryRepo struct{}

func (fakeCategoryRepo) FindAll(ctx context.Context) ([]domain.Category, error) {
	return []domain.Category{{ID: 1, Name: domain.UncategorizedName}}, nil
}

func TestCreateProduct_RequiresName(t *testing.T) {
	service := NewCatalogService(newFakeProductRepo(), fakeCategoryRepo{})

	_, err := service.CreateProduct(context.Background(), &domain.Product{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateProduct_RejectsDuplicateBarcode(t *testing.T) {
	repo := newFakeProductRepo()
	service := NewCatalogService(repo, fakeCategoryRepo{})

	barcode := "690123"
	if _, err := service.CreateProduct(context.Background(), &domain.Product{Name: "Rice", Barcode: &barcode}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := service.CreateProduct(context.Background(), &domain.Product{Name: "Other", Barcode: &barcode})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreateProduct_ActivatesProduct(t *testing.T) {
	repo := newFakeProductRepo()
	service := NewCatalogService(repo, fakeCategoryRepo{})

	product, err := service.CreateProduct(context.Background(), &domain.Product{Name: "Rice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !product.IsActive {
		t.Fatal("new product should be active")
	}
}

func TestUpdateProduct_OnlySetFieldsAreWritten(t *testing.T) {
	repo := newFakeProductRepo()
	service := NewCatalogService(repo, fakeCategoryRepo{})

	product, err := service.CreateProduct(context.Background(), &domain.Product{Name: "Rice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name := "Premium Rice"
	stock := 30
	err = service.UpdateProduct(context.Background(), product.ID, UpdateInput{Name: &name, Stock: &stock})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.lastFields) != 2 {
		t.Fatalf("fields = %v, want exactly name and stock", repo.lastFields)
	}
	if repo.lastFields["name"] != "Premium Rice" || repo.lastFields["stock"] != 30 {
		t.Fatalf("unexpected fields: %v", repo.lastFields)
	}
}

func TestUpdateProduct_EmptyInputIsNoop(t *testing.T) {
	repo := newFakeProductRepo()
	service := NewCatalogService(repo, fakeCategoryRepo{})

	// Unknown id with nothing to write: no repo call, no error.
	if err := service.UpdateProduct(context.Background(), 99, UpdateInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFields != nil {
		t.Fatal("repo should not have been called")
	}
}

func TestDeleteProduct_IsSoft(t *testing.T) {
	repo := newFakeProductRepo()
	service := NewCatalogService(repo, fakeCategoryRepo{})

	product, err := service.CreateProduct(context.Background(), &domain.Product{Name: "Rice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.DeleteProduct(context.Background(), product.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Row is still resolvable by id, just no longer listed.
	got, err := service.GetProduct(context.Background(), product.ID)
	if err != nil {
		t.Fatalf("deleted product should stay resolvable: %v", err)
	}
	if got.IsActive {
		t.Fatal("deleted product should be inactive")
	}

	views, err := service.ListProducts(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("deleted product still listed: %+v", views)
	}

	err = service.DeleteProduct(context.Background(), 404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

package customers

import (
	"context"
	"errors"
	"testing"

	"wareFlow/domain"
	"wareFlow/pkg/utils"
)

type fakeCustomerRepo struct {
	customers  map[uint]domain.Customer
	byUsername map[string]uint
	nextID     uint
	passwords  map[uint]string
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		customers:  make(map[uint]domain.Customer),
		byUsername: make(map[string]uint),
		passwords:  make(map[uint]string),
	}
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	f.nextID++
	customer.ID = f.nextID
	f.customers[customer.ID] = *customer
	f.byUsername[customer.Username] = customer.ID
	return nil
}

func (f *fakeCustomerRepo) FindByID(ctx context.Context, id uint) (domain.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return domain.Customer{}, domain.ErrNotFound
	}
	return customer, nil
}

func (f *fakeCustomerRepo) FindByUsername(ctx context.Context, username string) (domain.Customer, error) {
	id, ok := f.byUsername[username]
	if !ok {
		return domain.Customer{}, domain.ErrNotFound
	}
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) FindAll(ctx context.Context) ([]domain.Customer, error) {
	result := make([]domain.Customer, 0, len(f.customers))
	for _, customer := range f.customers {
		result = append(result, customer)
	}
	return result, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	stored, ok := f.customers[customer.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Name = customer.Name
	stored.ContactPerson = customer.ContactPerson
	stored.Phone = customer.Phone
	stored.Address = customer.Address
	stored.IsActive = customer.IsActive
	f.customers[customer.ID] = stored
	return nil
}

func (f *fakeCustomerRepo) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	if _, ok := f.customers[id]; !ok {
		return domain.ErrNotFound
	}
	f.passwords[id] = passwordHash
	return nil
}

func TestCreate_HashesPasswordAndActivates(t *testing.T) {
	repo := newFakeCustomerRepo()
	service := NewCustomersService(repo, "123456")

	customer, err := service.Create(context.Background(), CreateInput{
		Name:     "City Mart",
		Username: "citymart",
		Password: "secret99",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !customer.IsActive {
		t.Fatal("new customer should be active")
	}
	if customer.Password == "secret99" {
		t.Fatal("password must not be stored in plaintext")
	}
	if !utils.CheckPassword("secret99", customer.Password) {
		t.Fatal("stored hash does not verify against the supplied password")
	}
}

func TestCreate_RejectsDuplicateUsername(t *testing.T) {
	repo := newFakeCustomerRepo()
	service := NewCustomersService(repo, "123456")

	if _, err := service.Create(context.Background(), CreateInput{Name: "A", Username: "mart", Password: "pw123456"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := service.Create(context.Background(), CreateInput{Name: "B", Username: "mart", Password: "pw123456"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestUpdate_UnknownCustomer(t *testing.T) {
	service := NewCustomersService(newFakeCustomerRepo(), "123456")

	err := service.Update(context.Background(), 5, UpdateInput{Name: "X"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdate_CanDisableAndReenableAccount(t *testing.T) {
	repo := newFakeCustomerRepo()
	service := NewCustomersService(repo, "123456")

	customer, err := service.Create(context.Background(), CreateInput{Name: "A", Username: "mart", Password: "pw123456"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	disabled := false
	err = service.Update(context.Background(), customer.ID, UpdateInput{Name: "A", IsActive: &disabled})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), customer.ID)
	if stored.IsActive {
		t.Fatal("customer should be disabled")
	}

	enabled := true
	err = service.Update(context.Background(), customer.ID, UpdateInput{Name: "A", IsActive: &enabled})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ = repo.FindByID(context.Background(), customer.ID)
	if !stored.IsActive {
		t.Fatal("customer should be active again")
	}
}

func TestUpdate_OmittedActiveFlagKeepsAccountState(t *testing.T) {
	repo := newFakeCustomerRepo()
	service := NewCustomersService(repo, "123456")

	customer, err := service.Create(context.Background(), CreateInput{Name: "Shop A", Username: "shopa", Password: "pw123456"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A routine profile edit without the flag must not disable the account.
	err = service.Update(context.Background(), customer.ID, UpdateInput{
		Name:          "Shop A",
		ContactPerson: "Lee",
		Phone:         "123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), customer.ID)
	if !stored.IsActive {
		t.Fatal("omitting the flag must not disable the account")
	}
	if stored.ContactPerson != "Lee" {
		t.Fatalf("contact person = %q, want Lee", stored.ContactPerson)
	}

	// And when the account is already disabled, omitting the flag keeps it so.
	disabled := false
	if err := service.Update(context.Background(), customer.ID, UpdateInput{Name: "Shop A", IsActive: &disabled}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := service.Update(context.Background(), customer.ID, UpdateInput{Name: "Shop A"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored, _ = repo.FindByID(context.Background(), customer.ID)
	if stored.IsActive {
		t.Fatal("omitting the flag must not re-enable a disabled account")
	}
}

func TestResetPassword_SetsConfiguredDefault(t *testing.T) {
	repo := newFakeCustomerRepo()
	service := NewCustomersService(repo, "123456")

	customer, err := service.Create(context.Background(), CreateInput{Name: "A", Username: "mart", Password: "original"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.ResetPassword(context.Background(), customer.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hash, ok := repo.passwords[customer.ID]
	if !ok {
		t.Fatal("password was not updated")
	}
	if !utils.CheckPassword("123456", hash) {
		t.Fatal("reset hash does not verify against the default password")
	}

	err = service.ResetPassword(context.Background(), 404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

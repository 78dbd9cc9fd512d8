package order

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
)

type stubRepo struct {
	created     *domain.Order
	orders      []domain.Order
	order       *domain.Order
	err         error
	lastCreated domain.Order
	createCalls int
}

func (s *stubRepo) Create(_ context.Context, o domain.Order) (*domain.Order, error) {
	s.lastCreated = o
	s.createCalls++
	if s.created != nil {
		return s.created, s.err
	}
	return &o, s.err
}

func (s *stubRepo) List(_ context.Context) ([]domain.Order, error) {
	return s.orders, s.err
}

func (s *stubRepo) GetByID(_ context.Context, _ int64) (*domain.Order, error) {
	return s.order, s.err
}

var testCustomer = domain.CustomerInfo{
	Name:    "Jo Doe",
	Email:   "jo@example.com",
	Address: "1 Main St",
	City:    "Springfield",
	Zip:     "12345",
	Phone:   "555-0100",
}

func TestCheckoutEmptyItems(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)
	_, err := svc.Checkout(context.Background(), nil, testCustomer)
	if !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected invalid, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Fatalf("empty checkout must not create an order")
	}
}

func TestCheckoutMissingCustomerField(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)
	info := testCustomer
	info.Email = "  "
	items := []CheckoutItem{{Product: CheckoutProduct{ID: 1, Name: "Tent", PriceCents: 1000}, Quantity: 1}}
	_, err := svc.Checkout(context.Background(), items, info)
	if !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected invalid, got %v", err)
	}
}

func TestCheckoutRejectsNonPositiveQuantity(t *testing.T) {
	svc := New(&stubRepo{})
	items := []CheckoutItem{{Product: CheckoutProduct{ID: 1, Name: "Tent", PriceCents: 1000}, Quantity: 0}}
	_, err := svc.Checkout(context.Background(), items, testCustomer)
	if !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected invalid, got %v", err)
	}
}

func TestCheckoutUsesSubmittedPrices(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)
	items := []CheckoutItem{
		{Product: CheckoutProduct{ID: 3, Name: "Tent", PriceCents: 24999}, Quantity: 3},
		{Product: CheckoutProduct{ID: 7, Name: "Stove", PriceCents: 4499}, Quantity: 1},
	}
	got, err := svc.Checkout(context.Background(), items, testCustomer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantTotal := int64(3*24999 + 4499)
	if got.TotalCents != wantTotal {
		t.Fatalf("expected total %d, got %d", wantTotal, got.TotalCents)
	}
	if len(repo.lastCreated.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(repo.lastCreated.Items))
	}
	first := repo.lastCreated.Items[0]
	if first.ProductID != 3 || first.ProductName != "Tent" || first.ProductPriceCents != 24999 {
		t.Fatalf("snapshot fields not frozen: %+v", first)
	}
	if first.SubtotalCents != 3*24999 {
		t.Fatalf("expected subtotal %d, got %d", 3*24999, first.SubtotalCents)
	}
	if repo.lastCreated.CustomerInfo != testCustomer {
		t.Fatalf("customer info not carried: %+v", repo.lastCreated.CustomerInfo)
	}
}

func TestCheckoutRepoError(t *testing.T) {
	repo := &stubRepo{err: errors.New("boom")}
	svc := New(repo)
	items := []CheckoutItem{{Product: CheckoutProduct{ID: 1, Name: "Tent", PriceCents: 1000}, Quantity: 1}}
	_, err := svc.Checkout(context.Background(), items, testCustomer)
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected repo error, got %v", err)
	}
}

func TestGetNotFound(t *testing.T) {
	svc := New(&stubRepo{err: domain.ErrNotFound})
	_, err := svc.Get(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

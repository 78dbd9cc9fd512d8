package order

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/domain"
)

type Service struct {
	repo orderRepo
}

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}

func New(repo orderRepo) *Service {
	return &Service{repo: repo}
}

// CheckoutItem is one submitted cart line. The nested product carries the
// price as the client saw it; that snapshot, not a fresh catalog lookup, is
// what the order freezes.
type CheckoutItem struct {
	Product  CheckoutProduct `json:"product"`
	Quantity int             `json:"quantity"`
}

type CheckoutProduct struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}

func (s *Service) Checkout(ctx context.Context, items []CheckoutItem, info domain.CustomerInfo) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", domain.ErrInvalid)
	}
	if field := missingCustomerField(info); field != "" {
		return nil, fmt.Errorf("%w: customer %s is required", domain.ErrInvalid, field)
	}

	order := domain.Order{CustomerInfo: info, Items: make([]domain.OrderItem, 0, len(items))}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalid)
		}
		subtotal := item.Product.PriceCents * int64(item.Quantity)
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:         item.Product.ID,
			ProductName:       item.Product.Name,
			ProductPriceCents: item.Product.PriceCents,
			Quantity:          item.Quantity,
			SubtotalCents:     subtotal,
		})
		order.TotalCents += subtotal
	}

	return s.repo.Create(ctx, order)
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func missingCustomerField(info domain.CustomerInfo) string {
	fields := []struct {
		name  string
		value string
	}{
		{"name", info.Name},
		{"email", info.Email},
		{"address", info.Address},
		{"city", info.City},
		{"zip", info.Zip},
		{"phone", info.Phone},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return f.name
		}
	}
	return ""
}

package order

import (
	"context"

	"storefront/internal/domain"
)

type Repository interface {
	// Create persists the order with its items and clears every cart row, all
	// inside one transaction. The returned order carries server-assigned ids
	// and timestamps.
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}

package cart

import (
	"context"

	"storefront/internal/domain"
)

type Repository interface {
	// Add inserts a cart row for the product or, if one exists, atomically
	// increments its quantity by the given amount.
	Add(ctx context.Context, productID int64, quantity int) error
	// SetQuantity overwrites a row's quantity. A quantity <= 0 deletes the
	// row and succeeds whether or not it existed.
	SetQuantity(ctx context.Context, itemID int64, quantity int) error
	Remove(ctx context.Context, itemID int64) error
	Clear(ctx context.Context) error
	View(ctx context.Context) ([]domain.CartItem, error)
}

package cart

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Add(ctx context.Context, productID int64, quantity int) error {
	// Single-statement upsert: concurrent adds for one product both land,
	// the increment is atomic with respect to the stored quantity.
	const q = `
INSERT INTO cart_items (product_id, quantity)
VALUES ($1, $2)
ON CONFLICT (product_id) DO UPDATE
SET quantity = cart_items.quantity + EXCLUDED.quantity
`
	_, err := r.pool.Exec(ctx, q, productID, quantity)
	return err
}

func (r *postgresRepo) SetQuantity(ctx context.Context, itemID int64, quantity int) error {
	if quantity <= 0 {
		_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID)
		return err
	}
	cmd, err := r.pool.Exec(ctx, `UPDATE cart_items SET quantity = $1 WHERE id = $2`, quantity, itemID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Remove(ctx context.Context, itemID int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Clear(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items`)
	return err
}

func (r *postgresRepo) View(ctx context.Context) ([]domain.CartItem, error) {
	const q = `
SELECT ci.id, ci.product_id, ci.quantity, ci.created_at,
       p.id, p.name, p.category, p.price_cents, p.description, p.image, p.stock, p.created_at, p.updated_at
FROM cart_items ci
JOIN products p ON ci.product_id = p.id
ORDER BY ci.created_at DESC, ci.id DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.CartItem, 0)
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.ID, &item.ProductID, &item.Quantity, &item.CreatedAt,
			&item.Product.ID, &item.Product.Name, &item.Product.Category,
			&item.Product.PriceCents, &item.Product.Description,
			&item.Product.Image, &item.Product.Stock,
			&item.Product.CreatedAt, &item.Product.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

package order

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const orderQ = `
INSERT INTO orders (total_cents, status, customer_name, customer_email, customer_address, customer_city, customer_zip, customer_phone)
VALUES ($1, 'pending', $2, $3, $4, $5, $6, $7)
RETURNING id, status, created_at, updated_at
`
	created := o
	if err := tx.QueryRow(ctx, orderQ,
		o.TotalCents,
		o.CustomerInfo.Name, o.CustomerInfo.Email, o.CustomerInfo.Address,
		o.CustomerInfo.City, o.CustomerInfo.Zip, o.CustomerInfo.Phone,
	).Scan(&created.ID, &created.Status, &created.CreatedAt, &created.UpdatedAt); err != nil {
		r.logger.Printf("order repo: insert order error=%v", err)
		return nil, err
	}

	const itemQ = `
INSERT INTO order_items (order_id, product_id, product_name, product_price_cents, quantity, subtotal_cents)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`
	created.Items = make([]domain.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		item.OrderID = created.ID
		if err := tx.QueryRow(ctx, itemQ,
			created.ID, item.ProductID, item.ProductName,
			item.ProductPriceCents, item.Quantity, item.SubtotalCents,
		).Scan(&item.ID); err != nil {
			r.logger.Printf("order repo: insert item order_id=%d product_id=%d error=%v", created.ID, item.ProductID, err)
			return nil, err
		}
		created.Items = append(created.Items, item)
	}

	// Checkout consumes the whole shared cart.
	if _, err := tx.Exec(ctx, `DELETE FROM cart_items`); err != nil {
		r.logger.Printf("order repo: clear cart order_id=%d error=%v", created.ID, err)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: created id=%d total_cents=%d items=%d", created.ID, created.TotalCents, len(created.Items))
	return &created, nil
}

const orderColumns = `id, total_cents, status, customer_name, customer_email, customer_address, customer_city, customer_zip, customer_phone, created_at, updated_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC, id DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.itemsForOrder(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get id=%d error=%v", id, err)
		return nil, err
	}
	items, err := r.itemsForOrder(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *postgresRepo) itemsForOrder(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	const q = `
SELECT id, order_id, product_id, product_name, product_price_cents, quantity, subtotal_cents
FROM order_items
WHERE order_id = $1
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.ProductPriceCents, &item.Quantity, &item.SubtotalCents); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.TotalCents, &o.Status,
		&o.CustomerInfo.Name, &o.CustomerInfo.Email, &o.CustomerInfo.Address,
		&o.CustomerInfo.City, &o.CustomerInfo.Zip, &o.CustomerInfo.Phone,
		&o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

package product

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
	"storefront/internal/migrate"
)

func TestPostgres_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool, nil)
	created, err := repo.Create(ctx, domain.Product{
		Name: "Ridgeline 2P Tent", Category: "Tents", PriceCents: 24999,
		Description: "Lightweight", Image: "http://example.com/t.png", Stock: 15,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Fatalf("server-assigned fields missing: %+v", created)
	}

	fetched, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if fetched.Name != "Ridgeline 2P Tent" || fetched.PriceCents != 24999 {
		t.Fatalf("fetched mismatch %+v", fetched)
	}

	if _, err := repo.GetByID(ctx, created.ID+1000); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPostgres_ListFilters(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool, nil)
	seed := []domain.Product{
		{Name: "Ridgeline 2P Tent", Category: "Tents", PriceCents: 24999, Description: "Lightweight shelter", Image: "i", Stock: 1},
		{Name: "Summit 65L Pack", Category: "Backpacks", PriceCents: 18999, Description: "Expedition pack", Image: "i", Stock: 1},
		{Name: "Pocket Stove", Category: "Cookware", PriceCents: 4499, Description: "Tiny TENT-side stove", Image: "i", Stock: 1},
	}
	for _, p := range seed {
		if _, err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create %q: %v", p.Name, err)
		}
	}

	byCategory, err := repo.List(ctx, ListFilter{Category: "Tents"})
	if err != nil {
		t.Fatalf("List by category: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].Category != "Tents" {
		t.Fatalf("category filter leaked: %+v", byCategory)
	}

	// Search is case-insensitive over name and description.
	bySearch, err := repo.List(ctx, ListFilter{Search: "tent"})
	if err != nil {
		t.Fatalf("List by search: %v", err)
	}
	if len(bySearch) != 2 {
		t.Fatalf("expected 2 matches, got %+v", bySearch)
	}

	all, err := repo.List(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 products, got %d", len(all))
	}
	if all[0].ID < all[1].ID {
		t.Fatalf("expected newest first: %+v", all)
	}
}

func TestPostgres_Categories(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool, nil)
	for _, c := range []string{"Tents", "Backpacks", "Tents"} {
		if _, err := repo.Create(ctx, domain.Product{Name: "P", Category: c, PriceCents: 1, Description: "d", Image: "i"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	categories, err := repo.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(categories) != 2 || categories[0] != "Backpacks" || categories[1] != "Tents" {
		t.Fatalf("expected distinct sorted labels, got %v", categories)
	}
}

func TestPostgres_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool, nil)
	created, err := repo.Create(ctx, domain.Product{
		Name: "Ridgeline 2P Tent", Category: "Tents", PriceCents: 24999,
		Description: "Lightweight", Image: "http://example.com/t.png", Stock: 15,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	price := int64(19999)
	updated, err := repo.Update(ctx, created.ID, domain.ProductPatch{PriceCents: &price})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.PriceCents != 19999 {
		t.Fatalf("price not updated: %+v", updated)
	}
	if updated.Name != created.Name || updated.Category != created.Category ||
		updated.Description != created.Description || updated.Image != created.Image ||
		updated.Stock != created.Stock {
		t.Fatalf("unsupplied fields changed: %+v", updated)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("updated_at not refreshed")
	}

	if _, err := repo.Update(ctx, created.ID+1000, domain.ProductPatch{PriceCents: &price}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE order_items, orders, cart_items, products RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	return pool
}

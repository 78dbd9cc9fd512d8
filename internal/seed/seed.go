package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Name        string
	Category    string
	PriceCents  int64
	Description string
	Image       string
	Stock       int
}

// Apply inserts a demo catalog for manual testing. The catalog is only seeded
// into an empty products table, so reruns are harmless.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	products := []productSeed{
		{"Ridgeline 2P Tent", "Tents", 24999, "Lightweight two-person tent for three-season trips.", "https://images.unsplash.com/photo-1504280390367-361c6d9f38f4?w=300&h=300&fit=crop", 15},
		{"Basecamp 4P Tent", "Tents", 38999, "Roomy four-person tent with full-coverage rainfly.", "https://images.unsplash.com/photo-1504280390367-361c6d9f38f4?w=300&h=300&fit=crop", 8},
		{"Summit 65L Pack", "Backpacks", 18999, "Expedition pack with adjustable torso and rain cover.", "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=300&h=300&fit=crop", 20},
		{"Dayhike 28L Pack", "Backpacks", 7999, "Ventilated daypack with hydration sleeve.", "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=300&h=300&fit=crop", 35},
		{"Trailrunner Boots", "Footwear", 14999, "Waterproof hiking boots with aggressive tread.", "https://images.unsplash.com/photo-1520639888713-7851133b1ed0?w=300&h=300&fit=crop", 25},
		{"Creekside Sandals", "Footwear", 5999, "Quick-drying sandals for river crossings.", "https://images.unsplash.com/photo-1520639888713-7851133b1ed0?w=300&h=300&fit=crop", 40},
		{"Alpine Cookset", "Cookware", 8999, "Nested titanium pots with folding handles.", "https://images.unsplash.com/photo-1523987355523-c7b5b0dd90a7?w=300&h=300&fit=crop", 18},
		{"Pocket Stove", "Cookware", 4499, "Canister stove that packs down to palm size.", "https://images.unsplash.com/photo-1523987355523-c7b5b0dd90a7?w=300&h=300&fit=crop", 50},
		{"Ranger 10x42 Binoculars", "Optics", 21999, "Bright, fog-proof binoculars for wildlife viewing.", "https://images.unsplash.com/photo-1519638831568-d9897f54ed69?w=300&h=300&fit=crop", 12},
		{"Compact Monocular", "Optics", 6999, "Pocket monocular with 8x magnification.", "https://images.unsplash.com/photo-1519638831568-d9897f54ed69?w=300&h=300&fit=crop", 22},
		{"Trekking Poles (Pair)", "Accessories", 7499, "Carbon poles with quick-lock adjustment.", "https://images.unsplash.com/photo-1526570207772-784d36084510?w=300&h=300&fit=crop", 30},
		{"Headlamp 400", "Accessories", 3999, "Rechargeable headlamp with 400 lumen output.", "https://images.unsplash.com/photo-1526570207772-784d36084510?w=300&h=300&fit=crop", 45},
	}

	const q = `
INSERT INTO products (name, category, price_cents, description, image, stock)
VALUES ($1, $2, $3, $4, $5, $6)
`
	for _, p := range products {
		if _, err := pool.Exec(ctx, q, p.Name, p.Category, p.PriceCents, p.Description, p.Image, p.Stock); err != nil {
			return fmt.Errorf("insert product %q: %w", p.Name, err)
		}
	}
	return nil
}

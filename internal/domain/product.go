package domain

import "time"

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	PriceCents  int64     `json:"priceCents"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductPatch carries a partial update: nil fields keep their stored value.
type ProductPatch struct {
	Name        *string
	Category    *string
	PriceCents  *int64
	Description *string
	Image       *string
	Stock       *int
}

// Empty reports whether the patch would change nothing.
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Category == nil && p.PriceCents == nil &&
		p.Description == nil && p.Image == nil && p.Stock == nil
}

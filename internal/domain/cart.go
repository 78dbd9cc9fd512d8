package domain

import "time"

// CartItem is one row of the single shared cart. Product carries live catalog
// data joined at read time; cart rows never freeze product attributes.
type CartItem struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"-"`
	Product   Product   `json:"product"`
}

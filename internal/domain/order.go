package domain

import "time"

type Order struct {
	ID           int64        `json:"id"`
	TotalCents   int64        `json:"totalCents"`
	Status       string       `json:"status"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	Items        []OrderItem  `json:"items"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"-"`
}

// OrderItem is a frozen snapshot of a product at checkout time. Later catalog
// edits or deletions must not alter it, so ProductID is a plain reference.
type OrderItem struct {
	ID                int64  `json:"id"`
	OrderID           int64  `json:"-"`
	ProductID         int64  `json:"productId"`
	ProductName       string `json:"productName"`
	ProductPriceCents int64  `json:"productPriceCents"`
	Quantity          int    `json:"quantity"`
	SubtotalCents     int64  `json:"subtotalCents"`
}

type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Phone   string `json:"phone"`
}

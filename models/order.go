package models

import "time"

// Order is a denormalized purchase snapshot: product name, seller and
// price are copied at checkout time so later product edits do not alter
// order history.
type Order struct {
	ID          string     `json:"id,omitempty"`
	UserID      string     `json:"user_id"`
	ProductID   string     `json:"product_id"`
	Quantity    int        `json:"quantity"`
	TotalPrice  float64    `json:"total_price"`
	Address     string     `json:"address"`
	ProductName string     `json:"product_name"`
	SellerID    string     `json:"seller_id"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// SellerSale is an order row with the live product's title and price
// joined on, as returned by get-selling-history.
type SellerSale struct {
	Order
	Product ProductSummary `json:"products"`
}
